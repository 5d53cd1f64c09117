// Package assets serves the report page template and its CSS styles.
//
// Two built-in styles ship embedded ("default" and "compact") along with
// the "report" template. AssetResolver layers user directories over them:
//
//	NewAssetResolver("/etc/vocabfmt/brand", "./assets")
//	    /etc/vocabfmt/brand/styles/board-brief.css   (searched first)
//	    ./assets/styles/board-brief.css
//	    embedded styles/board-brief.css              (searched last)
//
// Each directory uses the same layout:
//
//	{basePath}/
//	├── styles/{name}.css
//	└── templates/{name}.html
//
// Names are bare identifiers (letters, digits, '-', '_'); FilesystemLoader
// also resolves symlinks and refuses files outside basePath.
package assets
