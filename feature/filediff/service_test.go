package filediff

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"datadiff/core/diff"
	"datadiff/core/failure"
	"datadiff/core/formats"
	"datadiff/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*Service, string) {
	dir := t.TempDir()
	svc := NewService(storage.NewLocalStore(dir), formats.NewRegistry(), diff.DefaultOptions(), zap.NewNop())
	return svc, dir
}

func assertNoUploads(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, storage.FolderUploads))
	if os.IsNotExist(err) {
		return
	}
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Compare(t *testing.T) {
	ctx := context.Background()

	t.Run("CSV", func(t *testing.T) {
		svc, dir := setupService(t)
		src := FromBytes("people.csv", []byte("name,age\nAlice,30\nBob,25\n"))
		tgt := FromBytes("people_v2.csv", []byte("name,age\nAlice,31\nBob,25\n"))

		report, err := svc.Compare(ctx, src, tgt)
		require.NoError(t, err)

		assert.Equal(t, "csv", report.FileType)
		assert.Equal(t, []string{"name", "age"}, report.Columns)
		assert.Equal(t, 2, report.Summary.TotalRows)
		assert.Equal(t, 1, report.Summary.MatchingRows)
		assert.Equal(t, 1, report.Summary.DifferingRows)
		assert.Nil(t, report.OriginalSourceLines)
		assertNoUploads(t, dir)
	})

	t.Run("XMLCarriesSourceLines", func(t *testing.T) {
		svc, dir := setupService(t)
		src := FromBytes("a.xml", []byte("<r>\n<a>1</a>\n</r>\n"))
		tgt := FromBytes("b.xml", []byte("<r><a>2</a></r>"))

		report, err := svc.Compare(ctx, src, tgt)
		require.NoError(t, err)

		assert.Equal(t, "xml", report.FileType)
		assert.Equal(t, []string{"<r>", "<a>1</a>", "</r>"}, report.OriginalSourceLines)
		assert.Equal(t, 1, report.Summary.DifferingRows)
		assertNoUploads(t, dir)
	})

	t.Run("MixedTypes", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Compare(ctx, FromBytes("a.csv", []byte("x\n1\n")), FromBytes("b.xml", []byte("<r/>")))
		assert.ErrorIs(t, err, failure.ErrUnsupportedFileType)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Compare(ctx, FromBytes("a.txt", []byte("x")), FromBytes("b.txt", []byte("x")))
		assert.ErrorIs(t, err, failure.ErrUnsupportedFileType)
	})

	t.Run("ParseFailureCleansUp", func(t *testing.T) {
		svc, dir := setupService(t)
		_, err := svc.Compare(ctx, FromBytes("a.xml", []byte("<r><a>")), FromBytes("b.xml", []byte("<r/>")))
		assert.ErrorIs(t, err, failure.ErrParse)
		assertNoUploads(t, dir)
	})
}

func TestService_Preview(t *testing.T) {
	svc, dir := setupService(t)

	var b strings.Builder
	b.WriteString("id,name\n")
	for i := 0; i < 15; i++ {
		b.WriteString("1,row\n")
	}

	preview, err := svc.Preview(context.Background(), FromBytes("big.csv", []byte(b.String())))
	require.NoError(t, err)

	assert.Equal(t, "csv", preview.FileType)
	assert.Equal(t, []string{"id", "name"}, preview.Columns)
	assert.Len(t, preview.Rows, diff.DefaultPreviewRows)
	assertNoUploads(t, dir)

	_, err = svc.Preview(context.Background(), FromBytes("notes.md", []byte("# x")))
	assert.ErrorIs(t, err, failure.ErrUnsupportedFileType)
}

func TestService_CompareFiles(t *testing.T) {
	svc, _ := setupService(t)
	dir := t.TempDir()

	src := filepath.Join(dir, "source.csv")
	tgt := filepath.Join(dir, "target.csv")
	require.NoError(t, os.WriteFile(src, []byte("id,city\n1,Paris\n2,Rome\n"), 0o644))
	require.NoError(t, os.WriteFile(tgt, []byte("id,city\n1,Paris\n"), 0o644))

	report, err := svc.CompareFiles(src, tgt)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.MatchingRows)
	assert.Equal(t, 1, report.Summary.ExtraRowsInSource)

	_, err = svc.CompareFiles(src, filepath.Join(dir, "target.xml"))
	assert.ErrorIs(t, err, failure.ErrUnsupportedFileType)
}
