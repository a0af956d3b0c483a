package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/iudanet/countrybook/internal/client/catalog"
	"github.com/iudanet/countrybook/internal/client/iocli"
	"github.com/iudanet/countrybook/internal/client/session"
	"github.com/iudanet/countrybook/internal/client/storage"
	"github.com/iudanet/countrybook/internal/client/storage/memory"
	"github.com/iudanet/countrybook/internal/models"
)

// testIO IOMock с буфером вывода и очередями ввода
type testIO struct {
	*iocli.IOMock
	lines  chan string
	out    bytes.Buffer
	inputs []string
	mu     sync.Mutex
}

func newTestIO(inputs ...string) *testIO {
	tio := &testIO{inputs: inputs, lines: make(chan string, 16)}
	tio.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			tio.mu.Lock()
			defer tio.mu.Unlock()
			fmt.Fprintln(&tio.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			tio.mu.Lock()
			defer tio.mu.Unlock()
			fmt.Fprintf(&tio.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			tio.mu.Lock()
			defer tio.mu.Unlock()
			return tio.out.Write(p)
		},
		ReadInputFunc:    tio.next,
		ReadPasswordFunc: tio.next,
		ReadLineFunc: func() (string, error) {
			line, ok := <-tio.lines
			if !ok {
				return "", io.EOF
			}
			return line, nil
		},
	}
	return tio
}

func (tio *testIO) next(prompt string) (string, error) {
	tio.mu.Lock()
	defer tio.mu.Unlock()
	if len(tio.inputs) == 0 {
		return "", io.EOF
	}
	v := tio.inputs[0]
	tio.inputs = tio.inputs[1:]
	return v, nil
}

func (tio *testIO) setInputs(inputs ...string) {
	tio.mu.Lock()
	defer tio.mu.Unlock()
	tio.inputs = inputs
}

func (tio *testIO) Output() string {
	tio.mu.Lock()
	defer tio.mu.Unlock()
	return tio.out.String()
}

func (tio *testIO) Reset() {
	tio.mu.Lock()
	defer tio.mu.Unlock()
	tio.out.Reset()
}

func sampleCountries() []models.Country {
	return []models.Country{
		{
			Code: "USA", CommonName: "United States", OfficialName: "United States of America",
			Region: "Americas", Subregion: "North America", Population: 331000000, AreaKm2: 9372610,
			Capitals: []string{"Washington, D.C."}, Timezones: []string{"UTC-05:00"},
			Languages:  map[string]string{"eng": "English"},
			Currencies: map[string]models.Currency{"USD": {Name: "United States dollar", Symbol: "$"}},
			Independent: true, UNMember: true,
		},
		{
			Code: "IND", CommonName: "India", OfficialName: "Republic of India",
			Region: "Asia", Subregion: "Southern Asia", Population: 1380000000, AreaKm2: 3287590,
			Capitals: []string{"New Delhi"}, Timezones: []string{"UTC+05:30"},
			Languages:  map[string]string{"eng": "English", "hin": "Hindi"},
			Currencies: map[string]models.Currency{"INR": {Name: "Indian rupee", Symbol: "₹"}},
			Independent: true, UNMember: true,
		},
		{
			Code: "IDN", CommonName: "Indonesia", OfficialName: "Republic of Indonesia",
			Region: "Asia", Population: 273500000, AreaKm2: 1904569,
			Languages: map[string]string{"ind": "Indonesian"},
			Independent: true, UNMember: true,
		},
		{
			Code: "FRA", CommonName: "France", OfficialName: "French Republic",
			Region: "Europe", Population: 67000000, AreaKm2: 551695,
			Languages:  map[string]string{"fra": "French"},
			Currencies: map[string]models.Currency{"EUR": {Name: "Euro", Symbol: "€"}},
			Independent: true, UNMember: true,
		},
	}
}

func newCatalogMock() *catalog.CatalogMock {
	pick := func(keep func(c *models.Country) bool) []models.Country {
		var out []models.Country
		for _, c := range sampleCountries() {
			if keep(&c) {
				out = append(out, c)
			}
		}
		return out
	}
	return &catalog.CatalogMock{
		FetchAllFunc: func(ctx context.Context) ([]models.Country, error) {
			return sampleCountries(), nil
		},
		FetchByNameFunc: func(ctx context.Context, name string) ([]models.Country, error) {
			found := pick(func(c *models.Country) bool {
				return strings.Contains(strings.ToLower(c.OfficialName), strings.ToLower(name))
			})
			if len(found) == 0 {
				return nil, &catalog.HTTPError{StatusCode: 404, Status: "Not Found"}
			}
			return found, nil
		},
		FetchByRegionFunc: func(ctx context.Context, region string) ([]models.Country, error) {
			return pick(func(c *models.Country) bool { return c.Region == region }), nil
		},
		FetchByLanguageFunc: func(ctx context.Context, language string) ([]models.Country, error) {
			// /lang сравнивает имя языка без учета регистра
			return pick(func(c *models.Country) bool {
				for _, name := range c.Languages {
					if strings.EqualFold(name, language) {
						return true
					}
				}
				return false
			}), nil
		},
		FetchByCodeFunc: func(ctx context.Context, code string) ([]models.Country, error) {
			found := pick(func(c *models.Country) bool { return c.Code == code })
			if len(found) == 0 {
				return nil, &catalog.HTTPError{StatusCode: 404, Status: "Not Found"}
			}
			return found, nil
		},
	}
}

type testEnv struct {
	cli     *Cli
	io      *testIO
	kv      storage.KeyValue
	catalog *catalog.CatalogMock
}

func newTestEnv(t *testing.T, kv storage.KeyValue, opts ...session.Option) *testEnv {
	t.Helper()
	if kv == nil {
		mem := memory.New()
		t.Cleanup(func() { _ = mem.Close() })
		kv = mem
	}

	tio := newTestIO()
	cat := newCatalogMock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps := NewDeps(kv, cat, tio.IOMock, logger, opts...)
	deps.DebounceInterval = 20 * time.Millisecond
	deps.RequestTimeout = time.Second

	cli := New(deps)
	t.Cleanup(cli.Close)
	return &testEnv{cli: cli, io: tio, kv: kv, catalog: cat}
}

// register заводит пользователя и оставляет его залогиненным
func (e *testEnv) register(t *testing.T, username string) {
	t.Helper()
	e.io.setInputs(username, username+"@example.com", "secret", "secret")
	if err := e.cli.Run(context.Background(), "register", nil); err != nil {
		t.Fatalf("register: %v", err)
	}
	e.io.Reset()
}
