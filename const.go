package firepal

const (
	dacMax = 63
)

const (
	DefaultSize  = 37
	DefaultLabel = "FirePalette"
)

const (
	defaultPreviewCell   = 16
	defaultPreviewHeight = 32
)
