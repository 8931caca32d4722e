package voxcore

import "testing"

func TestCellCodecRoundTrip(t *testing.T) {
	cases := []Cell{
		{Type: 0, Light: 0, Meta: 0, Add: 0},
		{Type: 4095, Light: 15, Meta: 255, Add: 255},
		{Type: 0x0A5, Light: 3, Meta: 0x42, Add: 0x00},
		{Type: 1, Light: 7, Meta: 128, Add: 64},
	}
	for _, c := range cases {
		buf := make([]byte, CellByteSize)
		EncodeCell(c, buf)

		var got Cell
		got.Visible = true // decode must not touch Visible
		DecodeCell(buf, &got)

		if got.Type != c.Type || got.Light != c.Light || got.Meta != c.Meta || got.Add != c.Add {
			t.Fatalf("round-trip mismatch: got %+v, want %+v", got, c)
		}
		if !got.Visible {
			t.Fatalf("decode must leave Visible untouched")
		}
	}
}

func TestCellCodecBigEndianHeader(t *testing.T) {
	c := Cell{Type: 0x123, Light: 0xA}
	buf := make([]byte, CellByteSize)
	EncodeCell(c, buf)
	if buf[0] != 0x12 || buf[1] != 0x3A {
		t.Fatalf("expected header bytes 0x12 0x3A, got %#x %#x", buf[0], buf[1])
	}
}

func TestCellCodecEncodeScenarioS1(t *testing.T) {
	c := Cell{Type: 0x0A5, Light: 3, Meta: 0x42, Add: 0x00}
	buf := make([]byte, CellByteSize)
	EncodeCell(c, buf)
	want := []byte{0x0A, 0x53, 0x42, 0x00}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %#x want %#x (full: %x)", i, buf[i], want[i], buf)
		}
	}
}

func TestCellCodecDecodeReportsChange(t *testing.T) {
	var c Cell
	buf := make([]byte, CellByteSize)
	EncodeCell(Cell{Type: 1, Light: 2}, buf)

	if changed := DecodeCell(buf, &c); !changed {
		t.Fatalf("expected first decode from zero value to report change")
	}
	if changed := DecodeCell(buf, &c); changed {
		t.Fatalf("expected re-decoding the same bytes to report no change")
	}

	EncodeCell(Cell{Type: 1, Light: 9}, buf)
	if changed := DecodeCell(buf, &c); !changed {
		t.Fatalf("expected light change to be reported")
	}
}

func TestCellCodecDecodeUnderrunPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on short buffer")
		}
		f, ok := r.(Fault)
		if !ok || f.Code != FaultDecodeUnderrun {
			t.Fatalf("expected Fault{FaultDecodeUnderrun}, got %#v", r)
		}
	}()
	var c Cell
	DecodeCell([]byte{0x00, 0x01}, &c)
}

func TestCellCodecEncodeUnderrunPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on short destination buffer")
		}
	}()
	EncodeCell(Cell{}, make([]byte, 2))
}
