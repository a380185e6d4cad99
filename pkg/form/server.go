package form

import (
	"context"
	"fmt"
	"github.com/flosch/pongo2/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"github.com/vidora/cli/pkg/client"
	"github.com/vidora/cli/pkg/logging"
	"net/http"
	"time"
)

// Signatures stay valid for five minutes, so a cached upload URL is reused
// for a shorter window and re-signed after that.
const signedURLCacheTTL = time.Minute * 4

const uploadTemplate = `<html>
<head><title>Upload to {{ organization }}</title></head>
<body>
<h1>Upload media to {{ organization }}</h1>
<form id="{{ form_id }}" action="{{ upload_url }}" method="post" enctype="multipart/form-data">
	<p><label>Title <input type="text" name="title" value="{{ default_title }}"></label></p>
	<p><input type="file" name="media_file"></p>
	<p><button type="submit">Upload</button></p>
</form>
<p>The form posts straight to the platform; the action URL above is pre-signed and expires after a few minutes. Refresh this page for a fresh one.</p>
</body>
</html>`

type uploadFormServer struct {
	hostname string
	port     int
	server   *http.Server
	client   *client.Client
	template *pongo2.Template
	signed   *cache.Cache
}

// GetUploadFormServer builds a local server that renders a browser upload
// form around a pre-signed upload URL.
func GetUploadFormServer(hostname string, port int, c *client.Client) (*uploadFormServer, error) {
	template, err := pongo2.FromString(uploadTemplate)
	if err != nil {
		return nil, err
	}

	return &uploadFormServer{
		hostname: hostname,
		port:     port,
		client:   c,
		template: template,
		signed:   cache.New(signedURLCacheTTL, time.Minute),
	}, nil
}

func (fs *uploadFormServer) Start() {
	r := mux.NewRouter()
	r.HandleFunc("/", fs.render).Methods("GET")

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", fs.hostname, fs.port),
		Handler: r,
	}
	fs.server = server
	err := fs.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logging.Log.Fatal(err)
	}
}

func (fs *uploadFormServer) Stop() {
	_ = fs.server.Shutdown(context.Background())
}

// URL returns the local address the form is served on.
func (fs *uploadFormServer) URL() string {
	return fmt.Sprintf("http://%s:%d/", fs.hostname, fs.port)
}

func (fs *uploadFormServer) render(w http.ResponseWriter, req *http.Request) {
	uploadURL, err := fs.signedUploadURL()
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "text/html")
	err = fs.template.ExecuteWriter(pongo2.Context{
		"organization":  fs.client.Organization(),
		"form_id":       uuid.NewString(),
		"upload_url":    uploadURL,
		"default_title": client.DefaultUploadTitle,
	}, w)
	if err != nil {
		logging.Log.Error(err)
	}
}

func (fs *uploadFormServer) signedUploadURL() (string, error) {
	if cached, ok := fs.signed.Get("upload_url"); ok {
		return cached.(string), nil
	}

	uploadURL, err := fs.client.UploadURL()
	if err != nil {
		return "", err
	}
	fs.signed.Set("upload_url", uploadURL, cache.DefaultExpiration)

	logging.Log.Debug("signed a fresh upload url")
	return uploadURL, nil
}
