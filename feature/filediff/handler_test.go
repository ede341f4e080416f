package filediff

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"datadiff/core/diff"
	"datadiff/core/formats"
	"datadiff/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type formFile struct {
	field    string
	filename string
	content  string
}

func multipartBody(t *testing.T, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	svc := NewService(storage.NewLocalStore(t.TempDir()), formats.NewRegistry(), diff.DefaultOptions(), zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleUpload(t *testing.T) {
	app := setupTestApp(t)

	t.Run("Success", func(t *testing.T) {
		body, ct := multipartBody(t,
			formFile{"sourceFile", "a.csv", "id,name\n1,Alice\n"},
			formFile{"targetFile", "b.csv", "id,name\n1,Alicia\n"},
		)
		req := httptest.NewRequest("POST", "/api/file-difference/upload", body)
		req.Header.Set("Content-Type", ct)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report diff.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, "csv", report.FileType)
		assert.Equal(t, 1, report.Summary.DifferingRows)
		require.Len(t, report.Rows, 1)
		assert.Equal(t, diff.StatusDifferent, report.Rows[0].Cells["name"].Status)
	})

	tests := []struct {
		name   string
		files  []formFile
		status int
		kind   string
	}{
		{
			name:   "MissingTarget",
			files:  []formFile{{"sourceFile", "a.csv", "x\n1\n"}},
			status: 400,
			kind:   "invalid_input",
		},
		{
			name: "Unsupported",
			files: []formFile{
				{"sourceFile", "a.json", "{}"},
				{"targetFile", "b.json", "{}"},
			},
			status: 400,
			kind:   "unsupported_file_type",
		},
		{
			name: "DifferentTypes",
			files: []formFile{
				{"sourceFile", "a.csv", "x\n1\n"},
				{"targetFile", "b.xml", "<r/>"},
			},
			status: 400,
			kind:   "unsupported_file_type",
		},
		{
			name: "BrokenXML",
			files: []formFile{
				{"sourceFile", "a.xml", "<r><a>"},
				{"targetFile", "b.xml", "<r/>"},
			},
			status: 422,
			kind:   "parse_failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.files...)
			req := httptest.NewRequest("POST", "/api/file-difference/upload", body)
			req.Header.Set("Content-Type", ct)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var out map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, tt.kind, out["kind"])
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestHandlePreview(t *testing.T) {
	app := setupTestApp(t)

	body, ct := multipartBody(t, formFile{"file", "a.csv", "id,name\n1,Alice\n2,\n"})
	req := httptest.NewRequest("POST", "/api/file-difference/preview", body)
	req.Header.Set("Content-Type", ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out Preview
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"id", "name"}, out.Columns)
	require.Len(t, out.Rows, 2)
	assert.Nil(t, out.Rows[1]["name"])

	req = httptest.NewRequest("POST", "/api/file-difference/preview", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/file-difference/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
}

func TestLoader(t *testing.T) {
	feature := NewFeature(storage.NewLocalStore(t.TempDir()), formats.NewRegistry(), diff.DefaultOptions(), zap.NewNop())

	assert.Equal(t, "file-difference", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
