package extractor

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

var _ ports.PackageExtractor = (*NativeExtractor)(nil)

// NativeExtractor reads a single member out of a .deb without dpkg.
type NativeExtractor struct {
	fileSystem ports.FileSystem
}

func ProvideNativeExtractor(fileSystem ports.FileSystem) *NativeExtractor {
	return &NativeExtractor{fileSystem: fileSystem}
}

func (e *NativeExtractor) ExtractMember(packagePath string, member string, destDir string) (string, error) {
	archive, err := e.fileSystem.ReadFile(packagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", packagePath, err)
	}

	content, err := readDataMember(archive, member)
	if err != nil {
		return "", fmt.Errorf("%s: %w", packagePath, err)
	}

	extracted := filepath.Join(destDir, filepath.FromSlash(member))
	if err := e.fileSystem.WriteFile(extracted, content, ports.ReadAllWriteOwner); err != nil {
		return "", err
	}
	return extracted, nil
}

func readDataMember(archive []byte, member string) ([]byte, error) {
	members, err := readArMembers(archive)
	if err != nil {
		return nil, err
	}

	for _, m := range members {
		if !strings.HasPrefix(m.Name, "data.tar") {
			continue
		}
		reader, err := decompress(m.Name, m.Data)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return findTarEntry(tar.NewReader(reader), member)
	}

	return nil, fmt.Errorf("no data member in package: %w", domain.ErrNotFound)
}

// decompress opens the data member by its suffix. dpkg accepts uncompressed, xz, gzip and
// zstd data members.
func decompress(name string, data []byte) (io.ReadCloser, error) {
	switch name {
	case "data.tar":
		return io.NopCloser(bytes.NewReader(data)), nil
	case "data.tar.xz":
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		return io.NopCloser(xzr), nil
	case "data.tar.gz":
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return gzr, nil
	case "data.tar.zst":
		zr, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("unsupported data member compression %s, use the system extractor", name)
	}
}

func findTarEntry(reader *tar.Reader, member string) ([]byte, error) {
	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("%s not found in package: %w", member, domain.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		if !header.FileInfo().Mode().IsRegular() {
			continue
		}
		if strings.TrimPrefix(header.Name, "./") == member {
			return io.ReadAll(reader)
		}
	}
}
