package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blakesmith/ar"
)

const arMagic = "!<arch>\n"

type arMember struct {
	Name string
	Data []byte
}

// readArMembers lists the members of an ar archive, the container format of .deb files.
// GNU ar terminates names with "/", which is dropped.
func readArMembers(archive []byte) ([]arMember, error) {
	if !bytes.HasPrefix(archive, []byte(arMagic)) {
		return nil, fmt.Errorf("not an ar archive")
	}

	reader := ar.NewReader(bytes.NewReader(archive))
	var members []arMember
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return members, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read ar header: %w", err)
		}

		name := strings.TrimRight(header.Name, "/")
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("read ar member %q: %w", name, err)
		}
		if int64(len(data)) != header.Size {
			return nil, fmt.Errorf("ar member %q is truncated", name)
		}
		members = append(members, arMember{Name: name, Data: data})
	}
}
