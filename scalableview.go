package scalableview

import _ "embed"

//go:embed VERSION
var Version string

//go:embed scalableview.toml
var DefaultConfig string
