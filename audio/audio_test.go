// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"testing"
)

// stubEncoder records nothing and writes nothing.
type stubEncoder struct {
	ext string
}

func (e *stubEncoder) Encode(io.WriteSeeker, Source) error { return nil }
func (e *stubEncoder) Ext() string                         { return e.ext }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	enc := &stubEncoder{ext: ".wav"}

	registry.Register("wav", enc)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered encoder")
	}
	if got != enc {
		t.Error("Registry.Get() returned different encoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for unknown format")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &stubEncoder{ext: ".wav"})
	registry.Register("aiff", &stubEncoder{ext: ".aiff"})

	got := registry.Formats()
	slices.Sort(got)

	if !slices.Equal(got, []string{"aiff", "wav"}) {
		t.Errorf("Formats() = %v, want [aiff wav]", got)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubEncoder{ext: ".a"}
	second := &stubEncoder{ext: ".b"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok || got != second {
		t.Error("Registry.Get() did not return the overwritten encoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	enc := &stubEncoder{ext: ".wav"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", enc)
			done <- true
		}()
	}
	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			_ = registry.Formats()
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != enc {
		t.Error("Registry returned wrong encoder after concurrent operations")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &stubEncoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
