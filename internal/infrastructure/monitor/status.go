package monitor

import "time"

type Status struct {
	PostgreSQL bool      `json:"postgresql"`
	Redis      bool      `json:"redis"`
	Journal    bool      `json:"journal"`
	Streams    int       `json:"streams"`
	LastCheck  time.Time `json:"last_check"`
}
