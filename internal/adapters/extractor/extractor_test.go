package extractor

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
	"mfspatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

const member = "usr/share/pve-manager/js/pvemanagerlib.js"

func buildTar(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "./usr/", Typeflag: tar.TypeDir, Mode: 0755}))
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func compressXz(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func buildAr(members ...arMember) []byte {
	var buf bytes.Buffer
	buf.WriteString(arMagic)
	for _, m := range members {
		fmt.Fprintf(&buf, "%-16s%-12d%-6d%-6d%-8s%-10d`\n", m.Name, 0, 0, 0, "100644", len(m.Data))
		buf.Write(m.Data)
		if len(m.Data)%2 == 1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

func buildDeb(dataName string, data []byte) []byte {
	return buildAr(
		arMember{Name: "debian-binary", Data: []byte("2.0\n")},
		arMember{Name: "control.tar.xz", Data: []byte("odd")},
		arMember{Name: dataName, Data: data},
	)
}

func TestReadArMembers_SplitsMembersAndSkipsPadding(t *testing.T) {
	archive := buildAr(
		arMember{Name: "debian-binary", Data: []byte("2.0\n")},
		arMember{Name: "odd/", Data: []byte("abc")},
		arMember{Name: "last", Data: []byte("z")},
	)

	members, err := readArMembers(archive)

	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "debian-binary", members[0].Name)
	assert.Equal(t, "odd", members[1].Name)
	assert.Equal(t, "abc", string(members[1].Data))
	assert.Equal(t, "z", string(members[2].Data))
}

func TestReadArMembers_RejectsNonArchive(t *testing.T) {
	_, err := readArMembers([]byte("PK\x03\x04"))

	assert.Error(t, err)
}

func TestReadArMembers_RejectsTruncatedMember(t *testing.T) {
	archive := buildAr(arMember{Name: "data.tar.xz", Data: []byte("0123456789")})

	_, err := readArMembers(archive[:len(archive)-4])

	assert.Error(t, err)
}

func TestNativeExtractor_ExtractsMemberFromXzData(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	tarball := buildTar(t, map[string]string{
		"./usr/share/pve-manager/js/other.js": "other",
		"./" + member:                         "Ext.define('PVE.storage.BTRFSInputPanel', {\n",
	})
	require.NoError(t, fileSystem.WriteFile("/work/pve.deb", buildDeb("data.tar.xz", compressXz(t, tarball)), ports.ReadWrite))
	sut := ProvideNativeExtractor(fileSystem)

	extracted, err := sut.ExtractMember("/work/pve.deb", member, "/work/extracted")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work/extracted", filepath.FromSlash(member)), extracted)
	content, err := fileSystem.ReadFile(extracted)
	require.NoError(t, err)
	assert.Equal(t, "Ext.define('PVE.storage.BTRFSInputPanel', {\n", string(content))
}

func TestNativeExtractor_ExtractsMemberFromGzipData(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	tarball := buildTar(t, map[string]string{member: "gz"})
	require.NoError(t, fileSystem.WriteFile("/work/pve.deb", buildDeb("data.tar.gz", compressGzip(t, tarball)), ports.ReadWrite))
	sut := ProvideNativeExtractor(fileSystem)

	extracted, err := sut.ExtractMember("/work/pve.deb", member, "/work/extracted")

	require.NoError(t, err)
	content, err := fileSystem.ReadFile(extracted)
	require.NoError(t, err)
	assert.Equal(t, "gz", string(content))
}

func TestNativeExtractor_ExtractsMemberFromZstdData(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	tarball := buildTar(t, map[string]string{"./" + member: "zst"})
	require.NoError(t, fileSystem.WriteFile("/work/pve.deb", buildDeb("data.tar.zst", compressZstd(t, tarball)), ports.ReadWrite))
	sut := ProvideNativeExtractor(fileSystem)

	extracted, err := sut.ExtractMember("/work/pve.deb", member, "/work/extracted")

	require.NoError(t, err)
	content, err := fileSystem.ReadFile(extracted)
	require.NoError(t, err)
	assert.Equal(t, "zst", string(content))
}

func TestNativeExtractor_CorruptZstdDataFails(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile("/work/pve.deb", buildDeb("data.tar.zst", []byte("not zstd")), ports.ReadWrite))
	sut := ProvideNativeExtractor(fileSystem)

	_, err := sut.ExtractMember("/work/pve.deb", member, "/work/extracted")

	assert.Error(t, err)
}

func TestNativeExtractor_MissingMemberIsNotFound(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	tarball := buildTar(t, map[string]string{"./usr/bin/pvesh": "#!/usr/bin/perl"})
	require.NoError(t, fileSystem.WriteFile("/work/pve.deb", buildDeb("data.tar.xz", compressXz(t, tarball)), ports.ReadWrite))
	sut := ProvideNativeExtractor(fileSystem)

	_, err := sut.ExtractMember("/work/pve.deb", member, "/work/extracted")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNativeExtractor_UnsupportedCompression(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile("/work/pve.deb", buildDeb("data.tar.lzma", []byte("lzma")), ports.ReadWrite))
	sut := ProvideNativeExtractor(fileSystem)

	_, err := sut.ExtractMember("/work/pve.deb", member, "/work/extracted")

	assert.ErrorContains(t, err, "data.tar.lzma")
}

func TestSystemExtractor_RunsDpkgDeb(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	expected := filepath.Join("/tmp/work/extracted", filepath.FromSlash(member))
	fileSystem.On("MkdirAll", "/tmp/work/extracted", ports.AccessMode(ports.ReadWriteExecute)).Return(nil)
	commandRunner.On("Run", "dpkg-deb", []string{"-x", "/tmp/work/pve.deb", "/tmp/work/extracted"}).Return([]byte{}, nil)
	fileSystem.On("FileExists", expected).Return(true, nil)
	sut := ProvideSystemExtractor(commandRunner, fileSystem)

	extracted, err := sut.ExtractMember("/tmp/work/pve.deb", member, "/tmp/work/extracted")

	require.NoError(t, err)
	assert.Equal(t, expected, extracted)
	commandRunner.AssertExpectations(t)
	fileSystem.AssertExpectations(t)
}

func TestSystemExtractor_MissingMemberIsNotFound(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("MkdirAll", mock.Anything, mock.Anything).Return(nil)
	commandRunner.On("Run", "dpkg-deb", mock.Anything).Return([]byte{}, nil)
	fileSystem.On("FileExists", mock.Anything).Return(false, nil)
	sut := ProvideSystemExtractor(commandRunner, fileSystem)

	_, err := sut.ExtractMember("/tmp/work/pve.deb", member, "/tmp/work/extracted")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSystemExtractor_DpkgFailureIncludesOutput(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("MkdirAll", mock.Anything, mock.Anything).Return(nil)
	commandRunner.On("Run", "dpkg-deb", mock.Anything).
		Return([]byte("dpkg-deb: error: 'pve.deb' is not a Debian format archive"), errors.New("exit status 2"))
	sut := ProvideSystemExtractor(commandRunner, fileSystem)

	_, err := sut.ExtractMember("/tmp/work/pve.deb", member, "/tmp/work/extracted")

	assert.ErrorContains(t, err, "not a Debian format archive")
}
