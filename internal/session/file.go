package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"nupmerge/internal/imposition"
)

var ErrNoPDFFiles = errors.New("session: no PDF files in upload")

// Upload is a file as received from the client, before intake.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
	Password    string
}

// IsPDF accepts a PDF content type or a ".pdf" name.
func (u Upload) IsPDF() bool {
	if strings.EqualFold(strings.TrimSpace(u.ContentType), "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(u.Name), ".pdf")
}

func NewSourceFile(u Upload) imposition.SourceFile {
	return imposition.SourceFile{
		ID:       NewID(),
		Name:     u.Name,
		Size:     int64(len(u.Data)),
		Data:     u.Data,
		Password: u.Password,
	}
}

// NewID returns a random 128-bit hex identifier.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("session: reading random id: %v", err))
	}
	return hex.EncodeToString(b[:])
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count the way the file list shows it, e.g. "1.5 KB".
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := math.Round(float64(n)/math.Pow(1024, float64(i))*100) / 100
	return fmt.Sprintf("%s %s", trimFloat(v), sizeUnits[i])
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
