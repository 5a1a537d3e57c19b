package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/importer"
	"salesanalytics/internal/logger"
	"salesanalytics/internal/seed"
	ws "salesanalytics/internal/websocket"
	"salesanalytics/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uploadCSV = `Date,Product,Category,Region,Amount,Quantity,Total
2024-09-01,Laptop,Electronics,North,1000,2,2000
2024-09-02,Mouse,Accessories,East,30,10,
`

type importFixture struct {
	sales    *memorySalesRepo
	imports  *memoryImportRepo
	tx       *passthroughTx
	notifier *recordingNotifier
	svc      ImportService
}

func newImportFixture() *importFixture {
	f := &importFixture{
		sales:    &memorySalesRepo{},
		imports:  &memoryImportRepo{},
		tx:       &passthroughTx{},
		notifier: &recordingNotifier{},
	}
	f.svc = NewImportService(f.sales, f.imports, f.tx, f.notifier, logger.Discard())
	return f
}

func TestImportCSV(t *testing.T) {
	f := newImportFixture()

	res, err := f.svc.Import(context.Background(), strings.NewReader(uploadCSV), "uploads/abc.csv", "september.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, res.RowCount)
	assert.Equal(t, "csv", res.Format)
	assert.Equal(t, "uploads/abc.csv", res.SourceFile)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.sales.records, 2)
	for _, r := range f.sales.records {
		require.NotNil(t, r.ImportID)
		assert.Equal(t, res.ImportID, r.ImportID.String())
		assert.Equal(t, "uploads/abc.csv", r.SourceFile)
	}
	assert.InDelta(t, 300, f.sales.records[1].Total, 0.001)

	require.Len(t, f.imports.logs, 1)
	assert.Equal(t, "september.csv", f.imports.logs[0].OriginalName)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, ws.EventSalesImported, f.notifier.events[0].Event)
}

func TestImportRejectsBadRowAtomically(t *testing.T) {
	f := newImportFixture()
	body := uploadCSV + "2024-09-03,Tablet,Electronics,West,abc,1,\n"

	_, err := f.svc.Import(context.Background(), strings.NewReader(body), "uploads/bad.csv", "bad.csv")
	require.Error(t, err)
	assert.True(t, analytics.IsValidation(err))
	assert.Empty(t, f.sales.records)
	assert.Empty(t, f.imports.logs)
	assert.Empty(t, f.notifier.events)
}

func TestImportRejectsHeaderOnlyFile(t *testing.T) {
	f := newImportFixture()

	_, err := f.svc.Import(context.Background(), strings.NewReader("date,product,category,region,amount,quantity\n"), "x.csv", "x.csv")
	require.ErrorIs(t, err, importer.ErrNoDataRows)
	assert.True(t, analytics.IsValidation(err))
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	f := newImportFixture()

	_, err := f.svc.Import(context.Background(), strings.NewReader(uploadCSV), "x.txt", "notes.txt")
	assert.ErrorIs(t, err, importer.ErrUnsupportedFormat)
}

func TestImportStorageFailure(t *testing.T) {
	f := newImportFixture()
	f.sales.writeErr = errStoreDown

	_, err := f.svc.Import(context.Background(), strings.NewReader(uploadCSV), "a.csv", "a.csv")
	require.ErrorIs(t, err, analytics.ErrStorageUnavailable)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, f.notifier.events)
}

func TestImportSucceedsWhenNotifierBusy(t *testing.T) {
	f := newImportFixture()
	f.notifier.err = ws.ErrHubBusy

	_, err := f.svc.Import(context.Background(), strings.NewReader(uploadCSV), "a.csv", "a.csv")
	assert.NoError(t, err)
}

func TestImportFile(t *testing.T) {
	f := newImportFixture()
	path := filepath.Join(t.TempDir(), "stored-upload")
	require.NoError(t, os.WriteFile(path, []byte(uploadCSV), 0o600))

	res, err := f.svc.ImportFile(context.Background(), path, "sales.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)
	assert.Equal(t, path, f.sales.records[0].SourceFile)
}

func TestImportFileMissing(t *testing.T) {
	f := newImportFixture()

	_, err := f.svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "gone.csv"), "")
	assert.Error(t, err)
}

func TestListImports(t *testing.T) {
	f := newImportFixture()
	for i := 0; i < 3; i++ {
		_, err := f.svc.Import(context.Background(), strings.NewReader(uploadCSV), "a.csv", "a.csv")
		require.NoError(t, err)
	}

	logs, total, err := f.svc.ListImports(context.Background(), pagination.New(2, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 1)
}

func TestSeedReplacesData(t *testing.T) {
	f := newImportFixture()
	f.sales.records = seed.Records()[:2]

	n, err := f.svc.Seed(context.Background(), seed.Records())
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Len(t, f.sales.records, 8)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, ws.EventSalesReset, f.notifier.events[0].Event)
}
