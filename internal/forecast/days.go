package forecast

import "time"

// maxForecastDays caps the grid to a 5-day display window. Buckets past the
// cap are dropped silently.
const maxForecastDays = 5

// DayKey identifies one calendar day in the viewer's location.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DayBucket holds one local calendar day's worth of samples, in the order
// they arrived.
type DayBucket struct {
	Key   DayKey   `json:"-"`
	Label string   `json:"label"`
	Items []Sample `json:"items"`
}

// GroupDays partitions samples into calendar-day buckets using loc to
// interpret each timestamp. Buckets appear in first-encounter order of their
// day key and the output is truncated to maxForecastDays. A nil or empty
// input produces an empty result.
func GroupDays(samples []Sample, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.Local
	}

	var buckets []DayBucket
	index := make(map[DayKey]int)

	for _, s := range samples {
		t := time.Unix(s.Timestamp, 0).In(loc)
		key := DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}

		i, ok := index[key]
		if !ok {
			if len(buckets) >= maxForecastDays {
				continue
			}
			// The first sample of a day fixes the bucket label.
			buckets = append(buckets, DayBucket{
				Key:   key,
				Label: t.Format("Mon, Jan 2"),
			})
			i = len(buckets) - 1
			index[key] = i
		}
		buckets[i].Items = append(buckets[i].Items, s)
	}

	return buckets
}
