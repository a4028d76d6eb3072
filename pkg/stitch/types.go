package stitch

// Project represents a Stitch project: a container of generated screens sharing a design theme.
type Project struct {
	Name        string `json:"name"` // resource name, "projects/{id}"
	Title       string `json:"title"`
	CreateTime  string `json:"createTime,omitempty"`
	UpdateTime  string `json:"updateTime,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
	DeviceType  string `json:"deviceType,omitempty"`
	Thumbnail   *File  `json:"thumbnailScreenshot,omitempty"`
	DesignTheme *Theme `json:"designTheme,omitempty"`
}

// ID returns the bare project id of the resource name.
func (p *Project) ID() string {
	id, _ := ParseProjectName(p.Name)
	return id
}

// ProjectsResponse is the response of the list projects endpoint.
type ProjectsResponse struct {
	Projects      []Project `json:"projects"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

// Screen represents a single generated screen. The HTML and CSS it was generated as
// are not inlined; they are referenced by download URLs.
type Screen struct {
	Name       string `json:"name"` // resource name, "projects/{p}/screens/{s}"
	Title      string `json:"title"`
	Prompt     string `json:"prompt,omitempty"`
	DeviceType string `json:"deviceType,omitempty"`
	Width      string `json:"width,omitempty"`
	Height     string `json:"height,omitempty"`
	HTMLCode   *File  `json:"htmlCode,omitempty"`
	CSSCode    *File  `json:"cssCode,omitempty"`
	Screenshot *File  `json:"screenshot,omitempty"`
	Theme      *Theme `json:"theme,omitempty"`
}

// ID returns the bare screen id of the resource name.
func (s *Screen) ID() string {
	_, id, err := ParseScreenName(s.Name)
	if err != nil {
		return s.Name
	}
	return id
}

// ScreensResponse is the response of the list screens endpoint.
type ScreensResponse struct {
	Screens       []Screen `json:"screens"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// File references a downloadable artifact of a screen (HTML, CSS or screenshot).
type File struct {
	Name        string `json:"name,omitempty"`
	DownloadURL string `json:"downloadUrl"`
	MimeType    string `json:"mimeType,omitempty"`
}

// Theme is the structured design theme Stitch attaches to projects and screens.
// Any field may be missing.
type Theme struct {
	CustomColor string `json:"customColor,omitempty"` // hex, e.g. "#135bec"
	Font        string `json:"font,omitempty"`        // enum, e.g. "SPACE_GROTESK"
	ColorMode   string `json:"colorMode,omitempty"`   // "LIGHT" or "DARK"
	Roundness   string `json:"roundness,omitempty"`
	Saturation  int    `json:"saturation,omitempty"`
}

// GenerateRequest is the body of a generate-screen-from-text call.
type GenerateRequest struct {
	Prompt     string `json:"prompt"`
	DeviceType string `json:"deviceType,omitempty"` // "MOBILE", "DESKTOP", "TABLET"
	ModelID    string `json:"modelId,omitempty"`
}

// GenerateResponse holds the screens produced by a generation call.
type GenerateResponse struct {
	Screens []Screen `json:"screens"`
}
