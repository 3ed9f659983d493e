package cleaner

import (
	"strings"
	"testing"
)

func TestSplitDescriptionNoTracklist(t *testing.T) {
	prose, tracks := SplitDescription("A stunning reissue of the debut album.")
	if prose == nil || *prose != "A stunning reissue of the debut album." {
		t.Errorf("prose = %v", prose)
	}
	if tracks != nil {
		t.Errorf("tracks = %v, want nil", *tracks)
	}
}

func TestSplitDescriptionConcatenatedDump(t *testing.T) {
	prose, tracks := SplitDescription("A stunning reissue.Tracklist SIDE A1. Intro2. Outro")

	if prose == nil || *prose != "A stunning reissue." {
		t.Errorf("prose = %v", prose)
	}
	if tracks == nil {
		t.Fatal("tracks = nil")
	}

	want := "\nSIDE A\n1. Intro\n2. Outro"
	if *tracks != want {
		t.Errorf("tracks = %q, want %q", *tracks, want)
	}
}

func TestSplitDescriptionTrackListTwoWords(t *testing.T) {
	// "Track List" with a space matches the same as "Tracklist"
	prose, tracks := SplitDescription("Prose here. Track List SIDE B1. Song")
	if prose == nil || *prose != "Prose here." {
		t.Errorf("prose = %v", prose)
	}
	if tracks == nil || !strings.Contains(*tracks, "SIDE B") {
		t.Errorf("tracks = %v", tracks)
	}
}

func TestSplitDescriptionEmptyProse(t *testing.T) {
	prose, tracks := SplitDescription("Tracklist SIDE A1. Only Song")
	if prose != nil {
		t.Errorf("prose = %q, want nil", *prose)
	}
	if tracks == nil {
		t.Fatal("tracks = nil")
	}
}

func TestSplitDescriptionBlankTrackSectionStaysNonNil(t *testing.T) {
	// "tracklist present but empty" must stay distinguishable from
	// "no tracklist at all"
	prose, tracks := SplitDescription("Some prose. Tracklist   ")
	if prose == nil || *prose != "Some prose." {
		t.Errorf("prose = %v", prose)
	}
	if tracks == nil {
		t.Error("blank track section collapsed to nil")
	}
}

func TestSplitDescriptionCollapsesRunsOfNewlines(t *testing.T) {
	_, tracks := SplitDescription("Tracklist\n\n\n\nSIDE A\n\n\n1. Song")
	if tracks == nil {
		t.Fatal("tracks = nil")
	}
	if strings.Contains(*tracks, "\n\n\n") {
		t.Errorf("tracks still contains 3+ newlines: %q", *tracks)
	}
}

func TestSplitDescriptionMultipleSides(t *testing.T) {
	_, tracks := SplitDescription("Tracklist SIDE A1. One2. Two SIDE B3. Three")
	if tracks == nil {
		t.Fatal("tracks = nil")
	}
	want := "\nSIDE A\n1. One\n2. Two\nSIDE B\n3. Three"
	if *tracks != want {
		t.Errorf("tracks = %q, want %q", *tracks, want)
	}
}
