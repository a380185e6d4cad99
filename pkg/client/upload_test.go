package client

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type uploadedForm struct {
	fields map[string]string
	file   struct {
		filename string
		mimeType string
		content  []byte
	}
}

func parseUpload(t *testing.T, r recordedRequest) uploadedForm {
	t.Helper()
	_, params, err := mime.ParseMediaType(r.contentType)
	if err != nil {
		t.Fatalf("upload request has no multipart content type: %s", err)
	}

	form := uploadedForm{fields: map[string]string{}}
	reader := multipart.NewReader(bytes.NewReader(r.body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err != nil {
			break
		}
		content, _ := ioutil.ReadAll(part)
		if part.FileName() != "" {
			form.file.filename = part.FileName()
			form.file.mimeType = part.Header.Get("Content-Type")
			form.file.content = content
		} else {
			form.fields[part.FormName()] = string(content)
		}
	}
	return form
}

func writeTempMedia(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not really a video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUploadFromFile(t *testing.T) {
	server := newRecordingServer(t, `{}`)
	c := testClient(t, Options{AccessKey: "ak", Secret: "s3cr3t", APIHost: server.URL})

	path := writeTempMedia(t, "clip.mp4")
	_, err := c.Upload(context.Background(), FileSource{Path: path}, UploadOptions{
		Title:    "Holiday",
		Metadata: map[string]string{"genre": "travel"},
	})
	if err != nil {
		t.Fatal(err)
	}

	// The unknown metadata key gets registered before the upload itself.
	if len(server.requests) != 3 {
		t.Fatalf("expected list + register + upload, got %d requests", len(server.requests))
	}
	if want := "/rest/organizations/org1/media/properties/custom.json"; server.requests[0].path != want {
		t.Errorf("expected the property listing first, got %q", server.requests[0].path)
	}
	if want := "/rest/organizations/org1/media/properties/custom/genre"; server.requests[1].path != want {
		t.Errorf("expected the registration call, got %q", server.requests[1].path)
	}

	upload := server.requests[2]
	if upload.method != http.MethodPost {
		t.Errorf("expected POST, got %s", upload.method)
	}
	if want := "/rest/organizations/org1/media"; upload.path != want {
		t.Errorf("expected path %q, got %q", want, upload.path)
	}

	form := parseUpload(t, upload)
	if form.fields["title"] != "Holiday" {
		t.Errorf("expected the title field, got %v", form.fields)
	}
	if form.fields["custom_property[genre]"] != "travel" {
		t.Errorf("expected the metadata field, got %v", form.fields)
	}
	if form.file.filename != "clip.mp4" {
		t.Errorf("expected filename clip.mp4, got %q", form.file.filename)
	}
	if !strings.HasPrefix(form.file.mimeType, "video/mp4") {
		t.Errorf("expected a video/mp4 part, got %q", form.file.mimeType)
	}
}

func TestUploadSkipsRegisteredProperties(t *testing.T) {
	server := newRecordingServer(t, `{"custom_property_types":[{"type_name":"genre"}]}`)
	c := testClient(t, Options{AccessKey: "ak", Secret: "s3cr3t", APIHost: server.URL})

	path := writeTempMedia(t, "clip.mp4")
	_, err := c.Upload(context.Background(), FileSource{Path: path}, UploadOptions{
		Metadata: map[string]string{"genre": "travel"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(server.requests) != 2 {
		t.Fatalf("expected list + upload only, got %d requests", len(server.requests))
	}
	form := parseUpload(t, server.requests[1])
	if form.fields["title"] != DefaultUploadTitle {
		t.Errorf("expected the placeholder title, got %q", form.fields["title"])
	}
}

func TestUploadFromStream(t *testing.T) {
	server := newRecordingServer(t, `{}`)
	c := testClient(t, Options{AccessKey: "ak", Secret: "s3cr3t", APIHost: server.URL})

	_, err := c.Upload(context.Background(), StreamSource{
		Reader:   strings.NewReader("streamed bytes"),
		Filename: "clip.bin",
		MimeType: "video/mp4",
	}, UploadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	form := parseUpload(t, server.requests[0])
	if form.file.filename != "clip.bin" {
		t.Errorf("expected the explicit filename, got %q", form.file.filename)
	}
	if form.file.mimeType != "video/mp4" {
		t.Errorf("expected the explicit MIME type, got %q", form.file.mimeType)
	}
	if string(form.file.content) != "streamed bytes" {
		t.Errorf("expected the stream content, got %q", form.file.content)
	}
}

func TestUploadRejectsUnusableSources(t *testing.T) {
	c := signingClient(t)

	tests := []struct {
		name   string
		source UploadSource
	}{
		{name: "nil source", source: nil},
		{name: "stream without filename", source: StreamSource{Reader: strings.NewReader("x")}},
		{name: "stream without reader", source: StreamSource{Filename: "clip.mp4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Upload(context.Background(), tt.source, UploadOptions{})
			unsupported := &UnsupportedInputError{}
			if !errors.As(err, &unsupported) {
				t.Fatalf("expected an UnsupportedInputError, got %v", err)
			}
		})
	}
}

func TestUploadURL(t *testing.T) {
	c := signingClient(t)

	uploadURL, err := c.UploadURL()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uploadURL, APIHost+"/rest/organizations/org1/media?") {
		t.Errorf("expected an absolute pre-signed URL, got %q", uploadURL)
	}
	if !strings.Contains(uploadURL, "signature=") {
		t.Errorf("expected a signature parameter, got %q", uploadURL)
	}
}
