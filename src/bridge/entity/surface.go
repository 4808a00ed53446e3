package entity

import (
	"encoding/json"

	"go.lsp.dev/uri"
)

// ViewColumn identifies a pane in the host editor. Negative values are relative to the active pane.
type ViewColumn int

const (
	// ViewColumnActive targets the currently active pane.
	ViewColumnActive ViewColumn = -1
	// ViewColumnOne is the first pane.
	ViewColumnOne ViewColumn = 1
	// ViewColumnTwo is the second pane.
	ViewColumnTwo ViewColumn = 2
	// ViewColumnThree is the third pane.
	ViewColumnThree ViewColumn = 3
)

// SurfaceID identifies a rendering surface created by the host.
type SurfaceID string

// CreateSurfaceParams asks the host to create a rendering surface.
type CreateSurfaceParams struct {
	ViewType           string     `json:"viewType"`
	Title              string     `json:"title"`
	ViewColumn         ViewColumn `json:"viewColumn"`
	LocalResourceRoots []uri.URI  `json:"localResourceRoots"`
	EnableScripts      bool       `json:"enableScripts"`
}

// CreateSurfaceResult is the host's answer to CreateSurfaceParams.
type CreateSurfaceResult struct {
	SurfaceID SurfaceID `json:"surfaceId"`
}

// SetSurfaceHTMLParams installs a document into a surface.
type SetSurfaceHTMLParams struct {
	SurfaceID SurfaceID `json:"surfaceId"`
	HTML      string    `json:"html"`
}

// PostMessageParams posts a message into a surface.
type PostMessageParams struct {
	SurfaceID SurfaceID      `json:"surfaceId"`
	Message   SurfaceMessage `json:"message"`
}

// SurfaceMessage is the payload the embedded editor's message listener evaluates.
type SurfaceMessage struct {
	Eval Command `json:"eval"`
}

// AsSurfaceURIParams asks the host to translate a local file into a URI loadable by the surface.
type AsSurfaceURIParams struct {
	SurfaceID SurfaceID `json:"surfaceId"`
	URI       uri.URI   `json:"uri"`
}

// DisposeSurfaceParams asks the host to close a surface.
type DisposeSurfaceParams struct {
	SurfaceID SurfaceID `json:"surfaceId"`
}

// ShowInputBoxParams prompts the user for a line of text.
type ShowInputBoxParams struct {
	Prompt      string `json:"prompt"`
	PlaceHolder string `json:"placeHolder"`
}

// OpenTextDocumentParams opens a read-only text buffer in the host.
type OpenTextDocumentParams struct {
	LanguageID    string     `json:"languageId"`
	Content       string     `json:"content"`
	ViewColumn    ViewColumn `json:"viewColumn"`
	PreserveFocus bool       `json:"preserveFocus"`
}

// SurfaceMessageParams carries a message raised by the embedded editor, forwarded by the host.
type SurfaceMessageParams struct {
	SurfaceID SurfaceID       `json:"surfaceId"`
	Payload   json.RawMessage `json:"payload"`
}

// DidDisposeSurfaceParams reports that the host closed a surface on its own, e.g. the user closed the panel.
type DidDisposeSurfaceParams struct {
	SurfaceID SurfaceID `json:"surfaceId"`
}
