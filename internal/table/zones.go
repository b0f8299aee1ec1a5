package table

// Zone is the training goal a percentage of 1RM is usually programmed for.
type Zone struct {
	Name       string
	MinPercent int
	MaxPercent int
	RepRange   string
	Goal       string
}

// Zones are ordered heaviest first. Neighbouring ranges share their edge; the
// heavier zone owns it.
var Zones = []Zone{
	{Name: "Peaking", MinPercent: 90, MaxPercent: 100, RepRange: "1-3", Goal: "Heavy singles and test-day preparation"},
	{Name: "Strength", MinPercent: 80, MaxPercent: 90, RepRange: "3-5", Goal: "Force production and neural efficiency"},
	{Name: "Hypertrophy", MinPercent: 65, MaxPercent: 80, RepRange: "8-12", Goal: "Muscle growth through volume"},
	{Name: "Recovery", MinPercent: 0, MaxPercent: 65, RepRange: "12+", Goal: "Deload, speed work and technique"},
}

// ZoneFor returns the zone a percentage falls in.
func ZoneFor(percent int) Zone {
	for _, z := range Zones {
		if percent >= z.MinPercent {
			return z
		}
	}
	return Zones[len(Zones)-1]
}
