package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
)

// DefaultUploadTitle is used when an upload carries no title of its own.
const DefaultUploadTitle = "Untitled"

// The stdlib's builtin extension table lacks most media types on systems
// without an /etc/mime.types.
func init() {
	for extension, mimeType := range map[string]string{
		".mp4":  "video/mp4",
		".m4v":  "video/x-m4v",
		".mov":  "video/quicktime",
		".avi":  "video/x-msvideo",
		".wmv":  "video/x-ms-wmv",
		".flv":  "video/x-flv",
		".webm": "video/webm",
		".mkv":  "video/x-matroska",
		".mp3":  "audio/mpeg",
		".m4a":  "audio/mp4",
	} {
		_ = mime.AddExtensionType(extension, mimeType)
	}
}

// UploadSource is either a FileSource or a StreamSource.
type UploadSource interface {
	open() (io.ReadCloser, string, string, error)
}

// FileSource uploads a file from disk. The MIME type is inferred from the
// filename extension.
type FileSource struct {
	Path string
}

func (s FileSource) open() (io.ReadCloser, string, string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, "", "", err
	}
	filename := filepath.Base(s.Path)
	return file, filename, mimeFor(filename, ""), nil
}

// StreamSource uploads from an in-memory or otherwise already-open byte
// stream. The filename is required; the MIME type is inferred from it
// unless given explicitly.
type StreamSource struct {
	Reader   io.Reader
	Filename string
	MimeType string
}

func (s StreamSource) open() (io.ReadCloser, string, string, error) {
	if s.Reader == nil {
		return nil, "", "", &UnsupportedInputError{Reason: "no stream to read from"}
	}
	if s.Filename == "" {
		return nil, "", "", &UnsupportedInputError{Reason: "a stream needs an explicit filename"}
	}
	return ioutil.NopCloser(s.Reader), s.Filename, mimeFor(s.Filename, s.MimeType), nil
}

func mimeFor(filename string, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if detected := mime.TypeByExtension(filepath.Ext(filename)); detected != "" {
		return detected
	}
	return "application/octet-stream"
}

// UploadOptions carries the optional attributes of an upload.
type UploadOptions struct {
	Title    string
	Metadata map[string]string
}

// Upload pushes a media file to the platform. Metadata keys that are not
// yet registered as custom properties are registered first; the upload
// itself goes through the long-timeout client since media files can take
// a while to transfer.
func (c *Client) Upload(ctx context.Context, source UploadSource, opts UploadOptions) (map[string]interface{}, error) {
	if source == nil {
		return nil, &UnsupportedInputError{Reason: "no file path or stream given"}
	}

	reader, filename, mimeType, err := source.open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	title := opts.Title
	if title == "" {
		title = DefaultUploadTitle
	}

	if len(opts.Metadata) > 0 {
		c.registerMissingProperties(ctx, opts.Metadata)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("title", title)
	for key, value := range opts.Metadata {
		_ = writer.WriteField(fmt.Sprintf("custom_property[%s]", key), value)
	}

	part, err := mediaFormFile(writer, filename, mimeType)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, reader); err != nil {
		return nil, err
	}
	_ = writer.Close()

	b, err := c.do(ctx, c.uploader, http.MethodPost, c.apiHost, c.path("/media"), nil, body, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	return decodeJSON(b)
}

// UploadURL returns a pre-signed URL an external uploader (a browser, a
// separate process) can POST a media file to directly, without going
// through this client.
func (c *Client) UploadURL() (string, error) {
	return c.SignedURL(http.MethodPost, c.apiHost, c.path("/media"), nil)
}

// Unknown metadata keys have to exist as custom properties before an
// upload can reference them. Registration failures are ignored here; the
// upload itself is the call that decides.
func (c *Client) registerMissingProperties(ctx context.Context, metadata map[string]string) {
	known := map[string]bool{}
	if names, err := c.CustomProperties(ctx); err == nil {
		for _, name := range names {
			known[name] = true
		}
	}
	for key := range metadata {
		if !known[key] {
			_ = c.CreateCustomProperties(ctx, key)
		}
	}
}

func mediaFormFile(writer *multipart.Writer, filename string, mimeType string) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="media_file"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	return writer.CreatePart(header)
}
