package metric

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/stats/view"
)

func TestRecordClassification(t *testing.T) {
	pe, err := NewExporter(&Config{Namespace: "clsdemo_test"})
	require.NoError(t, err)

	ctx := context.Background()
	RecordClassification(ctx, "knn", 1, 2*time.Millisecond)
	RecordClassification(ctx, "knn", 1, 3*time.Millisecond)
	RecordClassification(ctx, "naive-bayes", 0, time.Millisecond)
	RecordClassificationError(ctx, "knn")
	RecordRequest(ctx, "/classify/knn")

	rows, err := view.RetrieveData("classifications_total")
	require.NoError(t, err)
	var knn int64
	for _, row := range rows {
		for _, tg := range row.Tags {
			if tg.Key == KeyAlgorithm && tg.Value == "knn" {
				knn = row.Data.(*view.CountData).Value
			}
		}
	}
	assert.Equal(t, int64(2), knn)

	rows, err = view.RetrieveData("classification_errors_total")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	w := httptest.NewRecorder()
	pe.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "clsdemo_test_classifications_total")
}
