package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jwsched/parser/internal/xerrors"
)

func TestGetReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	data, err := Get(context.Background(), srv.URL, DefaultLimits())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("body = %q, want hello", data)
	}
}

func TestGetRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 100))
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.URL, Limits{Timeout: DefaultLimits().Timeout, MaxBytes: 10})
	if !xerrors.Is(err, xerrors.FileTooLarge) {
		t.Fatalf("err = %v, want FILE_TOO_LARGE", err)
	}
}

func TestGetNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.URL, DefaultLimits())
	if !xerrors.Is(err, xerrors.IOError) {
		t.Fatalf("err = %v, want IO_ERROR", err)
	}
}
