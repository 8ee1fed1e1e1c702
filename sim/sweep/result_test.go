package sweep

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/macsim/sim"
)

func sampleResult() *Result {
	res := &Result{
		Protocol: sim.ProtocolPPersistentCSMA,
		Channel:  sim.NewChannelConfig(100, 100, 1, 3),
		Seed:     42,
		Lambdas:  []float64{0, 0.5, 1},
	}
	for _, p := range []float64{0.5, 0.01} {
		s := Series{P: p, Points: []Point{
			{Lambda: 0, P: p},
			{Lambda: 0.5, P: p, Throughput: 0.3, AvgQueueLength: 2, Successes: 30},
			{Lambda: 1, P: p, Throughput: 0.2, AvgQueueLength: 40, Successes: 20},
		}}
		s.summarize(res.Protocol)
		res.Series = append(res.Series, s)
	}
	return res
}

func TestSeries_Summarize(t *testing.T) {
	s := sampleResult().Series[0]
	assert.Equal(t, 0.3, s.Summary.PeakThroughput)
	assert.Equal(t, 0.5, s.Summary.PeakLambda)
	assert.InDelta(t, 0.5/3, s.Summary.MeanThroughput, 1e-12)
	assert.InDelta(t, 14.0, s.Summary.MeanQueueLength, 1e-12)
	assert.Equal(t, 0.0, s.Summary.TheoryRMSE, "csma has no closed form")
}

func TestSeries_Summarize_AlohaRMSE(t *testing.T) {
	s := Series{P: 1, Points: []Point{
		{Lambda: 0, Throughput: 0.1, Theoretical: 0},
		{Lambda: 1, Throughput: 0.3, Theoretical: 0.4},
	}}
	s.summarize(sim.ProtocolSlottedAloha)
	assert.InDelta(t, 0.1, s.Summary.TheoryRMSE, 1e-12)
}

func TestWriteCSV_OneRowPerPoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatCSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+6)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"0.5", "0.5", "0.3", "2", "0", "30", "0", "0", "0"}, rows[2])
	assert.Equal(t, "0.01", rows[4][1], "second series follows the first")
}

func TestWriteJSON_CarriesSeriesAndSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatJSON))

	var decoded struct {
		Protocol string `json:"protocol"`
		Channel  struct {
			FTT float64 `json:"ftt"`
		} `json:"channel"`
		Series []struct {
			P       float64 `json:"p"`
			Summary struct {
				PeakLambda float64 `json:"peak_lambda"`
			} `json:"summary"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "p-csma", decoded.Protocol)
	assert.Equal(t, 3.0, decoded.Channel.FTT)
	require.Len(t, decoded.Series, 2)
	assert.Equal(t, 0.5, decoded.Series[0].Summary.PeakLambda)
}

func TestWrite_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sampleResult(), "xlsx"))
	assert.False(t, IsValidFormat("xlsx"))
	assert.True(t, IsValidFormat(FormatJSON))
}

func TestResult_Print(t *testing.T) {
	var buf bytes.Buffer
	sampleResult().Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Sweep Summary")
	assert.Contains(t, out, "p = 0.01")
	assert.Contains(t, out, "Mean Queue Length")
	assert.NotContains(t, out, "RMSE")
}
