package progression

// dominanceGap is the minimum lead the top attribute needs over the runner-up
// before it counts as the player's aspect.
const dominanceGap = 20

// aspectPriority is the fixed tie-break order: when attributes are equal the
// earlier key wins. Documented here so the result never depends on sort
// stability.
var aspectPriority = [...]struct {
	key   AttributeKey
	value func(Attributes) int64
}{
	{AttrStrength, func(a Attributes) int64 { return a.Str }},
	{AttrIntellect, func(a Attributes) int64 { return a.Int }},
	{AttrCreativity, func(a Attributes) int64 { return a.Cre }},
	{AttrSocial, func(a Attributes) int64 { return a.Soc }},
}

// ComputeAspect derives the dominant trait from the attribute totals. The top
// attribute must lead the second by at least dominanceGap, otherwise the
// player is Balanced. Ties resolve by priority order str > int > cre > soc.
func ComputeAspect(a Attributes) Aspect {
	top := aspectPriority[0]
	topValue := top.value(a)
	second := int64(-1)

	for _, entry := range aspectPriority[1:] {
		v := entry.value(a)
		if v > topValue {
			second = topValue
			top = entry
			topValue = v
		} else if v > second {
			second = v
		}
	}

	if topValue-second >= dominanceGap {
		return Aspect(top.key)
	}
	return AspectBalanced
}
