package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/scaffold"
)

// --- Fakes ---

type fakeWorkspace struct {
	fetched  []string
	inits    []string
	adds     []string
	fetchErr error
}

func (f *fakeWorkspace) Fetch(_ context.Context, source, dest string) error {
	f.fetched = append(f.fetched, source+" -> "+dest)
	return f.fetchErr
}

func (f *fakeWorkspace) Init(_ context.Context, dir string) error {
	f.inits = append(f.inits, dir)
	return nil
}

func (f *fakeWorkspace) AddAll(_ context.Context, dir string) error {
	f.adds = append(f.adds, dir)
	return nil
}

// --- Test helpers ---

func boolRef(b bool) *bool { return &b }

func testConfig() *config.Config {
	return &config.Config{
		Git: config.GitPolicy{Add: boolRef(false)},
		Templates: []config.Template{
			{Name: "Vue", Children: []config.Template{
				{Name: "vitesse", URL: "antfu/vitesse", Description: "Opinionated starter"},
			}},
			{Name: "Go", Children: []config.Template{
				{Name: "go-build", URL: "thockin/go-build-template", Git: config.GitPolicy{Add: boolRef(true)}},
				{Name: "plain", URL: "u/plain", Git: config.GitPolicy{Init: boolRef(false)}},
			}},
		},
	}
}

func staticLoader(cfg *config.Config) ConfigLoader {
	return func() (*config.Config, error) { return cfg, nil }
}

// --- list_templates tests ---

func TestHandleListTemplates(t *testing.T) {
	handler := handleListTemplates(staticLoader(testConfig()))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListTemplatesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 3 {
		t.Fatalf("Count = %d, want 3", out.Count)
	}

	want := []TemplateSummary{
		{Path: "Vue/vitesse", Description: "Opinionated starter", Source: "antfu/vitesse", GitInit: true},
		{Path: "Go/go-build", Source: "thockin/go-build-template", GitInit: true, GitAdd: true},
		{Path: "Go/plain", Source: "u/plain"},
	}
	for i, w := range want {
		if out.Templates[i] != w {
			t.Errorf("Templates[%d] = %+v, want %+v", i, out.Templates[i], w)
		}
	}
}

func TestHandleListTemplates_InvalidConfig(t *testing.T) {
	bad := &config.Config{Templates: []config.Template{{Name: "broken"}}}
	handler := handleListTemplates(staticLoader(bad))

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ListTemplatesInput{})
	var badErr *config.BadTemplateError
	if !errors.As(err, &badErr) {
		t.Errorf("error = %v, want *config.BadTemplateError", err)
	}
}

func TestHandleListTemplates_LoadError(t *testing.T) {
	boom := errors.New("disk gone")
	handler := handleListTemplates(func() (*config.Config, error) { return nil, boom })

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ListTemplatesInput{})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

// --- create_project tests ---

func TestHandleCreateProject(t *testing.T) {
	ws := &fakeWorkspace{}
	creator := &scaffold.Creator{Fetcher: ws, VCS: ws}
	handler := handleCreateProject(staticLoader(testConfig()), creator)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{Template: "Go/go-build", Name: "svc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Dir != "svc" || !out.GitInit || !out.GitAdd {
		t.Errorf("output = %+v", out)
	}
	if len(ws.fetched) != 1 || ws.fetched[0] != "thockin/go-build-template -> svc" {
		t.Errorf("fetched = %v", ws.fetched)
	}
	if len(ws.inits) != 1 || len(ws.adds) != 1 {
		t.Errorf("inits = %v, adds = %v", ws.inits, ws.adds)
	}
}

func TestHandleCreateProject_NoInit(t *testing.T) {
	ws := &fakeWorkspace{}
	handler := handleCreateProject(staticLoader(testConfig()), &scaffold.Creator{Fetcher: ws, VCS: ws})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{Template: "Go/plain", Name: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.GitInit || out.GitAdd || len(ws.inits) != 0 {
		t.Errorf("git ran: output = %+v, inits = %v", out, ws.inits)
	}
}

func TestHandleCreateProject_Errors(t *testing.T) {
	fetchErr := errors.New("network down")

	tests := []struct {
		name  string
		input CreateProjectInput
		ws    *fakeWorkspace
		is    error
	}{
		{"missing template", CreateProjectInput{Name: "x"}, &fakeWorkspace{}, nil},
		{"missing name", CreateProjectInput{Template: "Vue/vitesse"}, &fakeWorkspace{}, nil},
		{"unknown template", CreateProjectInput{Template: "Vue/nuxt", Name: "x"}, &fakeWorkspace{}, config.ErrTemplateNotFound},
		{"group path", CreateProjectInput{Template: "Vue", Name: "x"}, &fakeWorkspace{}, config.ErrTemplateNotFound},
		{"fetch failure", CreateProjectInput{Template: "Vue/vitesse", Name: "x"}, &fakeWorkspace{fetchErr: fetchErr}, fetchErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handleCreateProject(staticLoader(testConfig()), &scaffold.Creator{Fetcher: tt.ws, VCS: tt.ws})
			_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

// --- Server wiring ---

func TestNewServer_ListsTools(t *testing.T) {
	ctx := context.Background()
	ws := &fakeWorkspace{}
	server := NewServer("test", staticLoader(testConfig()), &scaffold.Creator{Fetcher: ws, VCS: ws})

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close() //nolint:errcheck // test teardown

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close() //nolint:errcheck // test teardown

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"list_templates", "create_project"} {
		if !names[want] {
			t.Errorf("tool %q not registered (have %v)", want, names)
		}
	}
}
