package progression

import "testing"

func TestComputeAspect(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  Aspect
	}{
		{name: "all zero", attrs: Attributes{}, want: AspectBalanced},
		{name: "strength dominant", attrs: Attributes{Str: 50, Int: 10}, want: AspectStrength},
		{name: "social dominant", attrs: Attributes{Soc: 25, Str: 5}, want: AspectSocial},
		{name: "gap exactly at threshold", attrs: Attributes{Cre: 20}, want: AspectCreativity},
		{name: "gap one short of threshold", attrs: Attributes{Cre: 19}, want: AspectBalanced},
		{name: "close race is balanced", attrs: Attributes{Str: 100, Int: 90}, want: AspectBalanced},
		{name: "exact tie at top is balanced", attrs: Attributes{Str: 40, Soc: 40}, want: AspectBalanced},
		{name: "runner up measured against top only", attrs: Attributes{Str: 100, Int: 81, Cre: 10}, want: AspectBalanced},
		{name: "top leads crowded field", attrs: Attributes{Str: 10, Int: 35, Cre: 15, Soc: 12}, want: AspectIntellect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeAspect(tt.attrs); got != tt.want {
				t.Errorf("ComputeAspect(%+v) = %q, want %q", tt.attrs, got, tt.want)
			}
		})
	}
}
