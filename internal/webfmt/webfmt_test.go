package webfmt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tigerwc/clubsite/internal/content"
)

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:05": "12:05 AM",
		"09:30": "9:30 AM",
		"11:59": "11:59 AM",
		"12:00": "12:00 PM",
		"12:05": "12:05 PM",
		"13:07": "1:07 PM",
		"20:00": "8:00 PM",
		"23:59": "11:59 PM",
		"":      "",
		"25:00": "",
		"nope":  "",
	}
	for in, want := range cases {
		require.Equal(t, want, FormatTime(in), "input %q", in)
	}
}

func TestFormatTime_AllHours(t *testing.T) {
	for h := 0; h < 24; h++ {
		got := FormatTime(fmt.Sprintf("%02d:05", h))
		if h < 12 {
			require.True(t, strings.HasSuffix(got, "AM"), "hour %d got %q", h, got)
		} else {
			require.True(t, strings.HasSuffix(got, "PM"), "hour %d got %q", h, got)
		}
		// minutes always two digits
		require.Contains(t, got, ":05 ")
	}
}

func TestEscapeHTML(t *testing.T) {
	require.Equal(t, "&amp;&lt;&gt;&quot;&#39;", EscapeHTML(`&<>"'`))
	// no-op on strings without reserved characters
	require.Equal(t, "Tiger Wrestling Club", EscapeHTML("Tiger Wrestling Club"))
	// double application double-encodes
	once := EscapeHTML("<b>")
	twice := EscapeHTML(once)
	require.Equal(t, "&lt;b&gt;", once)
	require.Equal(t, "&amp;lt;b&amp;gt;", twice)
	require.NotEqual(t, once, twice)
}

func TestFormatCompetitionRange(t *testing.T) {
	require.Equal(t, FormatCompetitionRange("2025-06-01", ""), FormatCompetitionRange("2025-06-01", "2025-06-01"))
	got := FormatCompetitionRange("2025-06-01", "2025-06-03")
	require.Contains(t, got, "–")
	require.Contains(t, got, "Jun 1, 2025")
	require.Contains(t, got, "Jun 3, 2025")
}

func TestFormatDateHelpers(t *testing.T) {
	require.Equal(t, "Jun 1, 2025", FormatDateShort("2025-06-01"))
	require.Equal(t, "Jun", FormatMonth("2025-06-01"))
	require.Equal(t, "1", FormatDay("2025-06-01"))
	require.Equal(t, "", FormatDateShort("not-a-date"))

	ts := time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local)
	require.Equal(t, "June 1, 2025", FormatDateLong(ts))
	require.Equal(t, "", FormatDateLong(time.Time{}))
}

func TestSortSlotsByOrder_Stable(t *testing.T) {
	slots := []content.ScheduleSlot{
		{ID: "a", Order: 2},
		{ID: "b", Order: 1},
		{ID: "c", Order: 1},
		{ID: "d", Order: 0},
	}
	sorted := SortSlotsByOrder(slots)
	require.Equal(t, []string{"d", "b", "c", "a"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	// input untouched
	require.Equal(t, "a", slots[0].ID)
}

func TestSortSponsorsByOrder_Stable(t *testing.T) {
	sponsors := []content.Sponsor{
		{Name: "first-tie", Order: 5},
		{Name: "second-tie", Order: 5},
		{Name: "leader", Order: 1},
	}
	sorted := SortSponsorsByOrder(sponsors)
	require.Equal(t, "leader", sorted[0].Name)
	require.Equal(t, "first-tie", sorted[1].Name)
	require.Equal(t, "second-tie", sorted[2].Name)
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(content.DateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBucketByDate_EffectiveEndDate(t *testing.T) {
	ev := content.CompetitionEvent{Name: "open", Date: "2025-06-01"}

	up, past := BucketByDate([]content.CompetitionEvent{ev}, day("2025-06-01"))
	require.Len(t, up, 1)
	require.Empty(t, past)

	up, past = BucketByDate([]content.CompetitionEvent{ev}, day("2025-06-02"))
	require.Empty(t, up)
	require.Len(t, past, 1)

	multi := content.CompetitionEvent{Name: "duals", Date: "2025-06-01", EndDate: "2025-06-03"}
	up, past = BucketByDate([]content.CompetitionEvent{multi}, day("2025-06-02"))
	require.Len(t, up, 1, "multi-day event is upcoming until its end date passes")
	require.Empty(t, past)
}

func TestBucketByDate_PastReverseChronological(t *testing.T) {
	events := []content.CompetitionEvent{
		{Name: "january", Date: "2025-01-10"},
		{Name: "march", Date: "2025-03-05"},
		{Name: "february", Date: "2025-02-01"},
		{Name: "future", Date: "2025-12-01"},
	}
	up, past := BucketByDate(events, day("2025-06-15"))
	require.Len(t, up, 1)
	require.Equal(t, "future", up[0].Name)
	require.Len(t, past, 3)
	require.Equal(t, "march", past[0].Name)
	require.Equal(t, "february", past[1].Name)
	require.Equal(t, "january", past[2].Name)
}

func TestBucketByDate_TimeOfDayIgnored(t *testing.T) {
	ev := content.CompetitionEvent{Name: "late", Date: "2025-06-01"}
	lateToday := day("2025-06-01").Add(23 * time.Hour)
	up, past := BucketByDate([]content.CompetitionEvent{ev}, lateToday)
	require.Len(t, up, 1)
	require.Empty(t, past)
}
