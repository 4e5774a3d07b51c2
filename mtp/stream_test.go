package mtp

import (
	"bytes"
	"testing"
)

func TestByteArrayInputStreamReadsToEnd(t *testing.T) {
	data := []byte("hello world")
	s := NewByteArrayInputStream(data)
	if s.Size() != uint64(len(data)) {
		t.Fatalf("Size() = %d, want %d", s.Size(), len(data))
	}

	var got []byte
	buf := make([]byte, 4)
	for {
		n, err := s.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if n == 0 {
			break
		}
		got = append(got, buf[:n]...)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestByteArrayInputStreamCancel(t *testing.T) {
	s := NewByteArrayInputStream([]byte("some data"))
	s.Cancel()
	_, err := s.Read(make([]byte, 4))
	if !IsCancelled(err) {
		t.Fatalf("Read after Cancel: got %v, want CancelledError", err)
	}
}

func TestByteArrayOutputStreamAccumulates(t *testing.T) {
	s := NewByteArrayOutputStream()
	for _, chunk := range [][]byte{[]byte("ab"), []byte("cd"), []byte("ef")} {
		n, err := s.Write(chunk)
		if err != nil || n != len(chunk) {
			t.Fatalf("Write(%q) = %d, %v", chunk, n, err)
		}
	}
	if got := string(s.Bytes()); got != "abcdef" {
		t.Fatalf("Bytes() = %q, want %q", got, "abcdef")
	}
}

func TestByteArrayOutputStreamProgress(t *testing.T) {
	s := NewByteArrayOutputStream()
	var reported []uint64
	s.SetProgressReporter(progressFunc(func(n uint64) { reported = append(reported, n) }))

	s.Write([]byte("abc"))
	s.Write([]byte("de"))

	want := []uint64{3, 5}
	if len(reported) != len(want) {
		t.Fatalf("reported %v, want %v", reported, want)
	}
	for i := range want {
		if reported[i] != want[i] {
			t.Fatalf("reported[%d] = %d, want %d", i, reported[i], want[i])
		}
	}
}

// progressFunc adapts a plain function to ProgressReporter for tests.
type progressFunc func(uint64)

func (f progressFunc) OnProgress(n uint64) { f(n) }

func TestJoinedInputStreamSplicesAtBoundary(t *testing.T) {
	header := NewByteArrayInputStream([]byte("HDR:"))
	body := NewByteArrayInputStream([]byte("payload"))
	var exhausted bool
	j := NewJoinedInputStream(header, body, NewCancelToken(), func() { exhausted = true })

	if got, want := j.Size(), uint64(len("HDR:")+len("payload")); got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}

	var all []byte
	buf := make([]byte, 3)
	for {
		n, err := j.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if n == 0 {
			break
		}
		all = append(all, buf[:n]...)
	}
	if got := string(all); got != "HDR:payload" {
		t.Fatalf("got %q, want %q", got, "HDR:payload")
	}
	if !exhausted {
		t.Fatalf("onExhausted was never called")
	}
}

func TestJoinedInputStreamFiresExhaustedExactlyOnce(t *testing.T) {
	header := NewByteArrayInputStream([]byte("H"))
	body := NewByteArrayInputStream([]byte("BODY"))
	count := 0
	j := NewJoinedInputStream(header, body, NewCancelToken(), func() { count++ })

	buf := make([]byte, 1)
	for i := 0; i < 10; i++ {
		n, err := j.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if n == 0 {
			break
		}
	}
	if count != 1 {
		t.Fatalf("onExhausted called %d times, want 1", count)
	}
}

func TestFramedOutputStreamCapsAtSize(t *testing.T) {
	inner := NewByteArrayOutputStream()
	f := NewFramedOutputStream(inner, 4)

	n, err := f.Write([]byte("abcdefgh"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 4 {
		t.Fatalf("Write returned n=%d, want 4", n)
	}
	if got := string(inner.Bytes()); got != "abcd" {
		t.Fatalf("inner got %q, want %q", got, "abcd")
	}

	n, err = f.Write([]byte("more"))
	if err != nil || n != 0 {
		t.Fatalf("second Write = %d, %v, want 0, nil", n, err)
	}
}
