package auth

import "testing"

func TestStaticResolver(t *testing.T) {
	r := StaticResolver{"sk-key-123": "tenant-1"}

	tenant, err := r.Resolve("sk-key-123")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tenant != "tenant-1" {
		t.Errorf("tenant = %q, want tenant-1", tenant)
	}

	if _, err := r.Resolve("sk-unknown"); err != ErrUnknownKey {
		t.Errorf("unknown key: err = %v, want ErrUnknownKey", err)
	}
}

func TestParseKeys(t *testing.T) {
	r := ParseKeys("sk-key-123:tenant-1, sk-key-456:tenant-2,broken,:empty,")
	if len(r) != 2 {
		t.Fatalf("parsed %d keys, want 2 (%v)", len(r), r)
	}
	if r["sk-key-123"] != "tenant-1" || r["sk-key-456"] != "tenant-2" {
		t.Errorf("unexpected table: %v", r)
	}
}
