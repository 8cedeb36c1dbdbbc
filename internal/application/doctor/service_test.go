package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/cmdkit/internal/domain"
)

func TestRunReportsEachConcern(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: validConfig()},
		KeyValueStore:  stubKV{},
		AIConfigs:      stubAIConfigs{cfg: domain.AIConfig{APIKey: "k", APIHost: "https://h/v1/", ModelName: "m"}, found: true},
		Generator:      &stubGenerator{},
		Clipboard:      stubClipboard{enabled: true},
	}

	report, err := svc.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"Config file", "Storage", "Clipboard", "AI config"}
	if len(report.Checks) != len(want) {
		t.Fatalf("expected %d checks, got %+v", len(want), report.Checks)
	}
	for i, name := range want {
		if report.Checks[i].Name != name || report.Checks[i].Status != domain.HealthOK {
			t.Errorf("check %d = %+v", i, report.Checks[i])
		}
	}
}

func TestRunOnlineTestsConnection(t *testing.T) {
	gen := &stubGenerator{err: &domain.NetworkError{Op: "test connection", StatusCode: 401}}
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: validConfig()},
		KeyValueStore:  stubKV{},
		AIConfigs:      stubAIConfigs{cfg: domain.AIConfig{APIKey: "k", APIHost: "h/"}, found: true},
		Generator:      gen,
	}

	report, err := svc.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one connection test, got %d", gen.calls)
	}
	if !report.HasErrors() {
		t.Fatalf("expected failing endpoint check, got %+v", report.Checks)
	}
}

func TestRunSkipsConnectionWithoutConfig(t *testing.T) {
	gen := &stubGenerator{}
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: validConfig()},
		AIConfigs:      stubAIConfigs{},
		Generator:      gen,
	}

	report, err := svc.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.calls != 0 {
		t.Fatal("connection tested without saved config")
	}
	if report.HasErrors() {
		t.Fatalf("missing AI config should only warn: %+v", report.Checks)
	}
}

func TestRunConfigLoadFailure(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfigProvider{err: errors.New("broken yaml")}}

	report, err := svc.Run(context.Background(), false)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(report.Checks) != 1 || report.Checks[0].Status != domain.HealthError {
		t.Fatalf("unexpected report %+v", report.Checks)
	}
}

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Storage:             domain.StorageSettings{Path: "/tmp/cmdkit.db"},
		Clipboard:           domain.ClipboardSettings{Enabled: true},
	}
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubKV struct{}

func (stubKV) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (stubKV) Set(context.Context, string, string) error { return nil }

func (stubKV) Delete(context.Context, string) error { return nil }

type stubAIConfigs struct {
	cfg   domain.AIConfig
	found bool
}

func (s stubAIConfigs) Load(context.Context) (domain.AIConfig, bool, error) {
	return s.cfg, s.found, nil
}

func (s stubAIConfigs) Save(context.Context, domain.AIConfig) error { return nil }

type stubGenerator struct {
	err   error
	calls int
}

func (s *stubGenerator) TestConnection(context.Context, domain.AIConfig) error {
	s.calls++
	return s.err
}

func (s *stubGenerator) Generate(context.Context, domain.AIConfig, string) (string, error) {
	return "", nil
}

type stubClipboard struct{ enabled bool }

func (s stubClipboard) Enabled() bool { return s.enabled }

func (s stubClipboard) Copy(string) error { return nil }
