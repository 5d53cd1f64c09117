package assets

// Asset subdirectories, shared by the embedded and filesystem layouts.
const (
	stylesDir    = "styles"
	templatesDir = "templates"
)

// AssetLoader loads report styles and page templates by bare name.
// Both methods return ErrInvalidAssetName for names ValidateAssetName
// rejects, and the matching not-found sentinel for unknown names.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
