package export

import "os"
import "bytes"
import "errors"
import "context"
import "testing"
import "image/png"
import "image/color"
import "encoding/binary"
import "path/filepath"

func TestEncodeICNS(t *testing.T) {
	entries := iconsetImages(DefaultPlan())
	var buffer bytes.Buffer
	err := EncodeICNS(&buffer, entries)
	if err != nil { t.Fatal(err) }

	data := buffer.Bytes()
	if string(data[0:4]) != "icns" { t.Fatalf("invalid magic %q", data[0:4]) }
	if total := binary.BigEndian.Uint32(data[4:8]); int(total) != len(data) {
		t.Fatalf("header length %d doesn't match file length %d", total, len(data))
	}

	// walk the members
	offset, index := 8, 0
	for offset < len(data) {
		osType := string(data[offset : offset + 4])
		length := int(binary.BigEndian.Uint32(data[offset + 4 : offset + 8]))
		member := icnsMembers[entries[index].Name]
		if osType != string(member.osType[:]) {
			t.Fatalf("member#%d: expected type %s, got %s", index, member.osType[:], osType)
		}
		img, err := png.Decode(bytes.NewReader(data[offset + 8 : offset + length]))
		if err != nil { t.Fatalf("member#%d: %s", index, err) }
		if img.Bounds().Dx() != member.size {
			t.Fatalf("member#%d: expected size %d, got %d", index, member.size, img.Bounds().Dx())
		}
		offset += length
		index += 1
	}
	if offset != len(data) || index != len(entries) {
		t.Fatalf("walked %d members up to %d of %d bytes", index, offset, len(data))
	}
}

func TestEncodeICNSErrors(t *testing.T) {
	var buffer bytes.Buffer
	if err := EncodeICNS(&buffer, nil); err == nil { t.Fatal("expected error on empty input") }

	bad := []IconsetImage{{ Name: "icon_32x32.png", Image: solidImage(16, color.NRGBA{}) }}
	if err := EncodeICNS(&buffer, bad); err == nil { t.Fatal("expected size mismatch error") }

	unknown := []IconsetImage{{ Name: "icon_33x33.png", Image: solidImage(33, color.NRGBA{}) }}
	if err := EncodeICNS(&buffer, unknown); err == nil { t.Fatal("expected unknown member error") }
}

func TestWriteIconset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "test.iconset")
	entries := iconsetImages(DefaultPlan())
	err := WriteIconset(dir, entries)
	if err != nil { t.Fatal(err) }
	for _, entry := range entries {
		if _, err := os.Stat(filepath.Join(dir, entry.Name)); err != nil {
			t.Fatalf("missing %s: %s", entry.Name, err)
		}
	}
}

func TestParseICNSMode(t *testing.T) {
	tests := []struct{ in string; mode ICNSMode; fails bool } {
		{"", ICNSAuto, false}, {"auto", ICNSAuto, false},
		{"iconutil", ICNSIconutil, false}, {"native", ICNSNative, false},
		{"Native", ICNSAuto, true}, {"png", ICNSAuto, true},
	}
	for i, test := range tests {
		mode, err := ParseICNSMode(test.in)
		if (err != nil) != test.fails { t.Fatalf("test#%d: unexpected error state %v", i, err) }
		if mode != test.mode { t.Fatalf("test#%d: expected %s, got %s", i, test.mode, mode) }
	}
}

func TestWriteICNSWithoutIconutil(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // no iconutil in an empty dir
	entries := iconsetImages(DefaultPlan())

	for _, mode := range []ICNSMode{ICNSAuto, ICNSNative} {
		path := filepath.Join(t.TempDir(), "icon.icns")
		size, err := WriteICNS(context.Background(), path, "test.iconset", entries, mode)
		if err != nil { t.Fatalf("%s: %s", mode, err) }
		data, err := os.ReadFile(path)
		if err != nil { t.Fatal(err) }
		if int64(len(data)) != size || string(data[:4]) != "icns" {
			t.Fatalf("%s: unexpected icns file (%d bytes, reported %d)", mode, len(data), size)
		}
	}

	path := filepath.Join(t.TempDir(), "icon.icns")
	_, err := WriteICNS(context.Background(), path, "test.iconset", entries, ICNSIconutil)
	if !errors.Is(err, ErrIconutil) { t.Fatalf("expected ErrIconutil, got %v", err) }
	if _, err := os.Stat(path); !os.IsNotExist(err) { t.Fatal("unexpected icns output") }
}
