package ports

type PackageManager interface {
	InstalledVersion(packageName string) (string, error)
	// Download fetches the package archive into dir and returns the archive path.
	Download(packageName string, dir string) (string, error)
}

// PackageExtractor unpacks a package archive.
type PackageExtractor interface {
	// ExtractMember makes member (a path relative to the package root) available below
	// destDir and returns the path of the extracted file.
	ExtractMember(packagePath string, member string, destDir string) (string, error)
}
