package notion

// Page is one record of a Notion data source. Properties is the
// semi-structured property bag; a missing bag decodes to a nil map and every
// lookup degrades to the zero Property.
type Page struct {
	ID         string              `json:"id"`
	URL        string              `json:"url"`
	Properties map[string]Property `json:"properties"`
}

// Property is the union of the property kinds this system reads. Notion tags
// each property with a type; unused payloads stay nil.
type Property struct {
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Status   *SelectOption `json:"status,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	Files    []File        `json:"files,omitempty"`
	URL      string        `json:"url,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption covers both select and status options; status additionally
// carries a display color.
type SelectOption struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type DateValue struct {
	Start string `json:"start"`
}

// File is one file descriptor of a files property. Type is either
// "external" or "file"; anything else is ignored by consumers.
type File struct {
	Type     string   `json:"type"`
	External *FileRef `json:"external,omitempty"`
	File     *FileRef `json:"file,omitempty"`
}

type FileRef struct {
	URL string `json:"url"`
}
