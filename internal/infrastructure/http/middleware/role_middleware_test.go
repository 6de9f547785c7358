package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
)

func invoke(t *testing.T, headers map[string]string) (entities.RoleContext, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured entities.RoleContext
	h := EchoRole()(func(c echo.Context) error {
		captured = GetRoleContext(c)
		return nil
	})
	err := h(c)
	return captured, err
}

func TestEchoRole_DefaultsToBasic(t *testing.T) {
	rc, err := invoke(t, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rc.Role != entities.RoleBasic {
		t.Fatalf("expected basic role, got %s", rc.Role)
	}
	if rc.UserID != "demo-user" {
		t.Fatalf("expected default user id, got %q", rc.UserID)
	}
}

func TestEchoRole_Operator(t *testing.T) {
	rc, err := invoke(t, map[string]string{
		"X-User-Role": "operator",
		"X-User-Id":   "alice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rc.Role != entities.RoleOperator || rc.UserID != "alice" {
		t.Fatalf("context not parsed from headers: %+v", rc)
	}
	if !rc.CanWrite() {
		t.Fatal("operator must be able to write")
	}
}

func TestEchoRole_UnknownRoleRejected(t *testing.T) {
	_, err := invoke(t, map[string]string{"X-User-Role": "admin"})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown role, got %v", err)
	}
}

func TestGetRoleContext_MissingContextIsBasic(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	rc := GetRoleContext(c)
	if rc.Role != entities.RoleBasic {
		t.Fatalf("missing context must degrade to basic, got %s", rc.Role)
	}
}
