package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	Path Path   `json:"path" yaml:"path"`
	Hash string `json:"hash" yaml:"hash"`
}

// Source is a candidate file together with the content that was analyzed.
type Source struct {
	Origin  *File
	Content []byte
}
