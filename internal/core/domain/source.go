package domain

// PristineSource is the unmodified bundle as shipped in the vendor package.
type PristineSource struct {
	Version     string // installed package version, empty when it could not be determined
	PackagePath string
	Path        string
	Content     []byte
}
