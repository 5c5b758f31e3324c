package secret

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zx06/vkey/internal/errors"
)

// mockBackend 模拟 keyring 后端，用于单元测试。
// 缺失记录以 ErrNotFound 报告，与真实 backend 契约一致。
type mockBackend struct {
	data    map[string]map[string]string
	failErr error // 非 nil 时所有操作都返回该错误
}

func newMockBackend() *mockBackend {
	return &mockBackend{data: make(map[string]map[string]string)}
}

func (m *mockBackend) set(service, account, value string) {
	if m.data[service] == nil {
		m.data[service] = make(map[string]string)
	}
	m.data[service][account] = value
}

func (m *mockBackend) Get(service, account string) (string, error) {
	if m.failErr != nil {
		return "", m.failErr
	}
	if svc, ok := m.data[service]; ok {
		if v, ok := svc[account]; ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("load %s/%s: %w", service, account, ErrNotFound)
}

func (m *mockBackend) Set(service, account, value string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.set(service, account, value)
	return nil
}

func (m *mockBackend) Delete(service, account string) error {
	if m.failErr != nil {
		return m.failErr
	}
	if svc, ok := m.data[service]; ok {
		if _, ok := svc[account]; ok {
			delete(svc, account)
			return nil
		}
	}
	return fmt.Errorf("delete %s/%s: %w", service, account, ErrNotFound)
}

func TestBackendInterface(t *testing.T) {
	var _ Backend = (*mockBackend)(nil)
	var _ Backend = (*osBackend)(nil)
}

func TestDefaultIdentity(t *testing.T) {
	id := DefaultIdentity()
	if id.Service != "photovault" {
		t.Errorf("service=%q, want %q", id.Service, "photovault")
	}
	if id.Account != "secret_key" {
		t.Errorf("account=%q, want %q", id.Account, "secret_key")
	}

	// Options 零值身份应回落到默认身份
	var opts Options
	if opts.identity() != DefaultIdentity() {
		t.Errorf("zero Options identity = %+v, want default", opts.identity())
	}
}

func TestStoreThenLoad_RoundTrip(t *testing.T) {
	be := newMockBackend()
	opts := Options{Backend: be}

	values := []string{
		"abc123",
		"",
		"p@ss w0rd!#",
		"密钥123",
		strings.Repeat("k", 1000),
	}
	for _, v := range values {
		if xe := Store(v, opts); xe != nil {
			t.Fatalf("Store(%q) failed: %v", v, xe)
		}
		got, ok, xe := Load(opts)
		if xe != nil {
			t.Fatalf("Load after Store(%q) failed: %v", v, xe)
		}
		if !ok {
			t.Fatalf("Load after Store(%q): ok=false", v)
		}
		if got != v {
			t.Errorf("Load = %q, want %q", got, v)
		}
	}
}

func TestStore_Overwrite(t *testing.T) {
	be := newMockBackend()
	opts := Options{Backend: be}

	if xe := Store("first", opts); xe != nil {
		t.Fatalf("Store failed: %v", xe)
	}
	if xe := Store("second", opts); xe != nil {
		t.Fatalf("overwrite Store failed: %v", xe)
	}

	got, ok, xe := Load(opts)
	if xe != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, xe)
	}
	if got != "second" {
		t.Errorf("Load = %q, want %q (last write wins)", got, "second")
	}

	// 同一身份至多一条记录
	id := opts.identity()
	if len(be.data[id.Service]) != 1 {
		t.Errorf("expected exactly one record, got %d", len(be.data[id.Service]))
	}
}

func TestLoad_AbsentIsNotError(t *testing.T) {
	be := newMockBackend()

	val, ok, xe := Load(Options{Backend: be})
	if xe != nil {
		t.Fatalf("Load on empty backend returned error: %v", xe)
	}
	if ok {
		t.Fatal("Load on empty backend: ok=true")
	}
	if val != "" {
		t.Errorf("Load on empty backend: val=%q, want empty", val)
	}
}

func TestClear_Idempotent(t *testing.T) {
	be := newMockBackend()
	opts := Options{Backend: be}

	// 空 backend 上 clear 不报错
	if xe := Clear(opts); xe != nil {
		t.Fatalf("Clear on absent record failed: %v", xe)
	}

	if xe := Store("value", opts); xe != nil {
		t.Fatalf("Store failed: %v", xe)
	}
	if xe := Clear(opts); xe != nil {
		t.Fatalf("Clear failed: %v", xe)
	}
	// 连续两次 clear，第二次同样成功
	if xe := Clear(opts); xe != nil {
		t.Fatalf("second Clear failed: %v", xe)
	}
}

func TestClear_ThenLoadAbsent(t *testing.T) {
	be := newMockBackend()
	opts := Options{Backend: be}

	if xe := Store("value", opts); xe != nil {
		t.Fatalf("Store failed: %v", xe)
	}
	if xe := Clear(opts); xe != nil {
		t.Fatalf("Clear failed: %v", xe)
	}

	_, ok, xe := Load(opts)
	if xe != nil {
		t.Fatalf("Load after Clear failed: %v", xe)
	}
	if ok {
		t.Fatal("Load after Clear: ok=true, want absent")
	}
}

func TestScenario_StoreLoadClearLoadClear(t *testing.T) {
	be := newMockBackend()
	opts := Options{Backend: be}

	if xe := Store("abc123", opts); xe != nil {
		t.Fatalf("Store failed: %v", xe)
	}

	val, ok, xe := Load(opts)
	if xe != nil || !ok || val != "abc123" {
		t.Fatalf("Load = (%q, %v, %v), want (abc123, true, nil)", val, ok, xe)
	}

	if xe := Clear(opts); xe != nil {
		t.Fatalf("Clear failed: %v", xe)
	}

	val, ok, xe = Load(opts)
	if xe != nil || ok || val != "" {
		t.Fatalf("Load after Clear = (%q, %v, %v), want absent", val, ok, xe)
	}

	if xe := Clear(opts); xe != nil {
		t.Fatalf("second Clear failed: %v", xe)
	}
}

func TestErrorNormalization(t *testing.T) {
	backendErr := stderrors.New("keychain locked: user denied access")
	be := newMockBackend()
	be.failErr = backendErr
	opts := Options{Backend: be}

	if xe := Store("v", opts); xe == nil {
		t.Fatal("Store with failing backend: expected error")
	} else {
		if xe.Code != errors.CodeKeyringAccess {
			t.Errorf("Store error code = %s, want %s", xe.Code, errors.CodeKeyringAccess)
		}
		if !stderrors.Is(xe, backendErr) {
			t.Error("Store error should preserve backend cause")
		}
	}

	if _, _, xe := Load(opts); xe == nil {
		t.Fatal("Load with failing backend: expected error")
	} else if xe.Code != errors.CodeKeyringAccess {
		t.Errorf("Load error code = %s, want %s", xe.Code, errors.CodeKeyringAccess)
	}

	if xe := Clear(opts); xe == nil {
		t.Fatal("Clear with failing backend: expected error")
	} else if xe.Code != errors.CodeKeyringAccess {
		t.Errorf("Clear error code = %s, want %s", xe.Code, errors.CodeKeyringAccess)
	}
}

func TestAlternateIdentityIsolation(t *testing.T) {
	be := newMockBackend()
	a := Options{Backend: be, Identity: Identity{Service: "svc-a", Account: "key"}}
	b := Options{Backend: be, Identity: Identity{Service: "svc-b", Account: "key"}}

	if xe := Store("value-a", a); xe != nil {
		t.Fatalf("Store a failed: %v", xe)
	}
	if xe := Store("value-b", b); xe != nil {
		t.Fatalf("Store b failed: %v", xe)
	}

	got, ok, xe := Load(a)
	if xe != nil || !ok || got != "value-a" {
		t.Fatalf("Load a = (%q, %v, %v)", got, ok, xe)
	}

	if xe := Clear(b); xe != nil {
		t.Fatalf("Clear b failed: %v", xe)
	}
	if _, ok, _ := Load(a); !ok {
		t.Fatal("Clear b should not affect a")
	}
}
