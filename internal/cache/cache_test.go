package cache

import (
	"testing"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
)

func TestKey_Stable(t *testing.T) {
	a := Key("notice text")
	b := Key("notice text")
	if a != b {
		t.Errorf("identical text must map to the same key: %q vs %q", a, b)
	}
	if a == Key("different text") {
		t.Error("different text must map to different keys")
	}
	if len(a) != len("auditintel:v1:")+64 {
		t.Errorf("unexpected key shape %q", a)
	}
}

func TestAnalysisCache_RoundTrip(t *testing.T) {
	c := NewAnalysisCache(NewMemoryCache(time.Minute, time.Minute))

	result := &model.AnalysisResult{
		Version: model.Version,
		Classification: &model.Classification{
			IsAudit: true,
			Type:    model.AuditCorrespondence,
		},
	}

	if err := c.Set("notice", result, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get("notice")
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.Classification == nil || got.Classification.Type != model.AuditCorrespondence {
		t.Errorf("round trip lost classification: %+v", got)
	}

	if _, found := c.Get("other notice"); found {
		t.Error("unexpected hit for different text")
	}
}

func TestAnalysisCache_CorruptEntryDropped(t *testing.T) {
	mem := NewMemoryCache(time.Minute, time.Minute)
	c := NewAnalysisCache(mem)

	if err := mem.Set(Key("notice"), []byte("{not json"), time.Minute); err != nil {
		t.Fatal(err)
	}

	if _, found := c.Get("notice"); found {
		t.Error("corrupt entry must miss")
	}
	if _, found := mem.Get(Key("notice")); found {
		t.Error("corrupt entry must be deleted")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); !found {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(40 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected miss after expiry")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set(Key("notice"), []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(Key("notice"))
	if !found || string(val) != "payload" {
		t.Errorf("expected payload, got %q found=%v", val, found)
	}

	if err := c.Delete(Key("notice")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get(Key("notice")); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(40 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected miss after expiry")
	}
}

func TestLayeredCache_DiskPromotion(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := layered.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	// Drop the memory layer; the next Get must fall through to disk and
	// repopulate memory
	if err := layered.memory.Clear(); err != nil {
		t.Fatal(err)
	}

	val, found := layered.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("expected disk fallback hit, got %q found=%v", val, found)
	}

	if _, found := layered.memory.Get("k"); !found {
		t.Error("disk hit must be promoted to memory")
	}
}

func TestLayeredCache_Clear(t *testing.T) {
	layered := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)

	if err := layered.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := layered.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found := layered.Get("k"); found {
		t.Error("expected miss after clear")
	}
}
