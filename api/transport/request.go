package transport

type AssetCreateRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type LocationCreateRequest struct {
	Name string `json:"name"`
}

type RenameRequest struct {
	NewName string `json:"new_name"`
}

type RelocateRequest struct {
	Location string `json:"location"`
}
