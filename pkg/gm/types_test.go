package gm

import "testing"

func TestEnumRoundTrip(t *testing.T) {
	for _, f := range knownFilterTypes {
		if got := FilterTypeFromNative(f.Native()); got != f {
			t.Fatalf("FilterType round trip: %d -> %d", f, got)
		}
	}
	for _, op := range knownCompositeOperators {
		if got := CompositeOperatorFromNative(op.Native()); got != op {
			t.Fatalf("CompositeOperator round trip: %d -> %d", op, got)
		}
	}
	for _, cs := range knownColorspaceTypes {
		if got := ColorspaceTypeFromNative(cs.Native()); got != cs {
			t.Fatalf("ColorspaceType round trip: %d -> %d", cs, got)
		}
	}
	for _, g := range knownGravityTypes {
		if got := GravityTypeFromNative(g.Native()); got != g {
			t.Fatalf("GravityType round trip: %d -> %d", g, got)
		}
	}
	for _, e := range knownExceptionTypes {
		if got := ExceptionTypeFromNative(e.Native()); got != e {
			t.Fatalf("ExceptionType round trip: %d -> %d", e, got)
		}
	}
	for _, r := range knownFillRules {
		if got := FillRuleFromNative(r.Native()); got != r {
			t.Fatalf("FillRule round trip: %d -> %d", r, got)
		}
	}
}

func TestEnumUnknown(t *testing.T) {
	// 0xDEAD is not a value any of these categories define.
	if got := FilterTypeFromNative(0xDEAD); got != UnknownFilter {
		t.Fatalf("FilterTypeFromNative(0xDEAD) = %d; want UnknownFilter", got)
	}
	if got := CompositeOperatorFromNative(0xDEAD); got != UnknownCompositeOp {
		t.Fatalf("CompositeOperatorFromNative(0xDEAD) = %d; want UnknownCompositeOp", got)
	}
	if got := ExceptionTypeFromNative(0xDEAD); got != UnknownException {
		t.Fatalf("ExceptionTypeFromNative(0xDEAD) = %d; want UnknownException", got)
	}
	if got := PaintMethodFromNative(0xDEAD); got != UnknownMethod {
		t.Fatalf("PaintMethodFromNative(0xDEAD) = %d; want UnknownMethod", got)
	}
}

func TestExceptionSeverity(t *testing.T) {
	cases := []struct {
		kind ExceptionType
		want ExceptionSeverity
	}{
		{UndefinedException, SeverityUndefined},
		{TypeEvent, SeverityEvent},
		{BlobWarning, SeverityWarning},
		{CorruptImageError, SeverityError},
		{ResourceFatalError, SeverityFatal},
	}
	for _, c := range cases {
		if got := c.kind.Severity(); got != c.want {
			t.Fatalf("Severity(%d) = %v; want %v", c.kind, got, c.want)
		}
	}
}
