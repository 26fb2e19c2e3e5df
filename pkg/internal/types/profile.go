package types

// ProfileInfo 一对一业务资料，Equipment 与 Closures 为不透明 JSON 文本.
type ProfileInfo struct {
	BusinessName string `json:"business_name,omitempty"`
	Equipment    string `json:"equipment,omitempty"`
	Closures     string `json:"closures,omitempty"`
}

// UpdateProfileRequest 资料更新，nil 字段不变.
type UpdateProfileRequest struct {
	BusinessName *string `json:"business_name,omitempty" rule:"omitempty,max=200"`
	Equipment    *string `json:"equipment,omitempty"`
	Closures     *string `json:"closures,omitempty"`
}

// ProfileResponse 资料响应.
type ProfileResponse struct {
	Profile ProfileInfo `json:"profile"`
}
