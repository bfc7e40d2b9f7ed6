package indicators

import (
	"encoding/json"
	"reflect"
	"testing"

	"StockLens/internal/domain/models"
)

const aaplDoc = `{
	"metadata": {"ticker": "AAPL"},
	"timeseries": {
		"dates": ["d1", "d2"],
		"price": [100, 110],
		"fifty_ma": [90],
		"twohundred_ma": [95, 96]
	},
	"analysis": {
		"moving_averages": {"latest_price": 110, "latest_50ma": 90, "latest_200ma": 96, "is_golden_cross": true}
	}
}`

func decodeDoc(t *testing.T, s string) *models.AnalysisDocument {
	t.Helper()
	var doc models.AnalysisDocument
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return &doc
}

func TestBuildView_MovingAveragesScenario(t *testing.T) {
	view := BuildView(decodeDoc(t, aaplDoc))
	p := view.MovingAverages
	if p == nil {
		t.Fatal("expected moving averages panel")
	}

	b, err := json.Marshal(p.Rows)
	if err != nil {
		t.Fatalf("marshal rows: %v", err)
	}
	want := `[{"date":"d1","price":100,"ma50":90,"ma200":95},{"date":"d2","price":110,"ma50":0,"ma200":96}]`
	if string(b) != want {
		t.Fatalf("rows mismatch\n got: %s\nwant: %s", b, want)
	}

	if p.State != string(models.TrendGoldenCross) {
		t.Errorf("expected golden cross, got %s", p.State)
	}
	wantSummary := []string{"Current Price: $110.00", "50-day MA: $90.00", "200-day MA: $96.00"}
	if !reflect.DeepEqual(p.Summary, wantSummary) {
		t.Errorf("summary mismatch: %v", p.Summary)
	}
	if p.Signal.Text != "Golden Cross (Bullish)" || p.Signal.Tone != models.ToneBullish {
		t.Errorf("unexpected signal %+v", p.Signal)
	}

	// no rsi or vwap series in the document
	if view.RSI != nil {
		t.Error("expected rsi panel to be skipped")
	}
	if view.VWAP != nil {
		t.Error("expected vwap panel to be skipped")
	}
}

func TestBuildView_MissingRSISkipsOnlyRSI(t *testing.T) {
	doc := &models.AnalysisDocument{
		Timeseries: &models.Timeseries{
			Dates: []string{"d1"},
			Price: models.NewSeries(10),
			VWAP:  models.NewSeries(9),
		},
	}
	if BuildRSI(doc) != nil {
		t.Fatal("expected nil rsi chart")
	}
	view := BuildView(doc)
	if view.RSI != nil {
		t.Fatal("expected rsi panel to be nil")
	}
	if view.MovingAverages == nil || view.VWAP == nil {
		t.Fatal("expected the other panels to render")
	}
	if len(view.Panels()) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(view.Panels()))
	}
}

func TestBuildCharts_RequireDates(t *testing.T) {
	doc := &models.AnalysisDocument{
		Timeseries: &models.Timeseries{
			Price: models.NewSeries(1),
			RSI:   models.NewSeries(50),
			VWAP:  models.NewSeries(1),
		},
	}
	if BuildMovingAverages(doc) != nil || BuildRSI(doc) != nil || BuildVWAP(doc) != nil {
		t.Fatal("expected every chart to be skipped without dates")
	}
	if BuildMovingAverages(&models.AnalysisDocument{}) != nil {
		t.Fatal("expected nil chart without timeseries")
	}
	if BuildView(nil) != nil {
		t.Fatal("expected nil view for nil document")
	}
}

func TestBuildVWAP_DefaultsPriceAndVolume(t *testing.T) {
	doc := &models.AnalysisDocument{
		Timeseries: &models.Timeseries{
			Dates: []string{"d1", "d2"},
			VWAP:  models.NewSeries(5, 6),
		},
		Analysis: &models.Analysis{VWAP: &models.VWAPSummary{CurrentVWAP: 6, PriceAboveVWAP: true}},
	}
	c := BuildVWAP(doc)
	if c == nil {
		t.Fatal("expected vwap chart")
	}
	for i, r := range c.Rows {
		if v, _ := r.Value(KeyPrice); v != 0 {
			t.Errorf("row %d: expected price 0, got %v", i, v)
		}
		if v, _ := r.Value(KeyVolume); v != 0 {
			t.Errorf("row %d: expected volume 0, got %v", i, v)
		}
	}
	p := VWAPPanel(c)
	if p.Summary[0] != "Current VWAP: $6.00" {
		t.Errorf("unexpected summary %q", p.Summary[0])
	}
	if p.Signal.Text != "Price is above VWAP (Bullish)" {
		t.Errorf("unexpected signal %q", p.Signal.Text)
	}
}

func TestRSIPanel_Text(t *testing.T) {
	doc := &models.AnalysisDocument{
		Timeseries: &models.Timeseries{Dates: []string{"d1"}, RSI: models.NewSeries(75.456)},
		Analysis:   &models.Analysis{RSI: &models.RSISummary{CurrentRSI: 75.456, IsOverbought: true, IsOversold: true}},
	}
	p := RSIPanel(BuildRSI(doc))
	if p.Summary[0] != "Current RSI: 75.46" {
		t.Errorf("unexpected summary %q", p.Summary[0])
	}
	if p.Signal != (models.Signal{Text: "Overbought", Tone: models.ToneBearish}) {
		t.Errorf("unexpected signal %+v", p.Signal)
	}
	if !reflect.DeepEqual(p.YDomain, []float64{0, 100}) {
		t.Errorf("unexpected y domain %v", p.YDomain)
	}
}

func TestBuildView_NoAnalysisSection(t *testing.T) {
	doc := &models.AnalysisDocument{
		Timeseries: &models.Timeseries{Dates: []string{"d1"}, Price: models.NewSeries(1), RSI: models.NewSeries(40)},
	}
	view := BuildView(doc)
	if view.MovingAverages.Signal.Text != "Death Cross (Bearish)" {
		t.Errorf("unexpected ma signal %q", view.MovingAverages.Signal.Text)
	}
	if view.MovingAverages.Summary[0] != "Current Price: $0.00" {
		t.Errorf("unexpected summary %q", view.MovingAverages.Summary[0])
	}
	if view.RSI.Signal.Text != "Neutral" {
		t.Errorf("unexpected rsi signal %q", view.RSI.Signal.Text)
	}
}

func TestBuildHeader(t *testing.T) {
	if BuildHeader(nil) != nil {
		t.Fatal("expected nil header without metadata")
	}
	h := BuildHeader(&models.Metadata{Ticker: "AAPL"})
	if h.Title != "AAPL" || h.Subtitle != "N/A | N/A" {
		t.Errorf("unexpected header %+v", h)
	}
	h = BuildHeader(&models.Metadata{Ticker: "AAPL", CompanyName: "Apple Inc.", Sector: "Technology", Industry: "Consumer Electronics"})
	if h.Title != "Apple Inc." || h.Subtitle != "Technology | Consumer Electronics" {
		t.Errorf("unexpected header %+v", h)
	}
}
