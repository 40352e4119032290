//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package verilog

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/markkurossi/truthtables/pla"
	"github.com/markkurossi/truthtables/table"
)

const header = "// Written by truthtables on 2026-01-02T03:04:05Z\n"

func init() {
	now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}
}

func emit(t *testing.T, f table.Function, mode Mode) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Emit(&buf, f, mode); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	return buf.String()
}

func dense(t *testing.T, rows []string) *table.Dense {
	t.Helper()
	d, err := table.NewDense(rows, nil)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

var reBranch = regexp.MustCompile(`(?m)^\t\t1'b[01] : `)

func TestCaseBranches(t *testing.T) {
	v := emit(t, dense(t, []string{"0", "1"}), Case)
	if n := len(reBranch.FindAllString(v, -1)); n != 2 {
		t.Errorf("expected 2 case branches, got %d:\n%s", n, v)
	}
	if strings.Contains(v, "default") {
		t.Errorf("unexpected default branch:\n%s", v)
	}
}

func TestCaseDense(t *testing.T) {
	expected := header + `module ckt( i0 , i1 , o0 , o1 );

input i0 , i1 ;
output reg o0 , o1 ;

always@(*) begin
	case ({ i0 , i1 })
		2'b00 : { o0 , o1 } = 2'b00;
		2'b01 : { o0 , o1 } = 2'b01;
		2'b10 : { o0 , o1 } = 2'b10;
		2'b11 : { o0 , o1 } = 2'b11;
	endcase
end

endmodule
`
	v := emit(t, dense(t, []string{"00", "01", "10", "11"}), Case)
	if diff := cmp.Diff(expected, v); diff != "" {
		t.Errorf("case mismatch (-want +got):\n%s", diff)
	}
}

func TestCaseCover(t *testing.T) {
	c, err := table.ParseCover(
		[]string{"0-", "10", "11"},
		[]string{"10", "0~", "11"},
		&table.Options{
			Name:    "pri",
			Inputs:  []string{"a", "b"},
			Outputs: []string{"x", "y"},
		})
	if err != nil {
		t.Fatal(err)
	}
	expected := header + `module pri( a , b , x , y );

input a , b ;
output reg x , y ;

always@(*) begin
	casez ({ a , b })
		2'b0? : { x , y } = 2'b10;
		2'b10 : { x , y } = 2'b00;
		2'b11 : { x , y } = 2'b11;
		default : { x , y } = 2'b00;
	endcase
end

endmodule
`
	v := emit(t, c, Case)
	if diff := cmp.Diff(expected, v); diff != "" {
		t.Errorf("casez mismatch (-want +got):\n%s", diff)
	}
}

func TestSOPDense(t *testing.T) {
	expected := header + `module ckt( i0 , i1 , o0 , o1 );

input i0 , i1 ;
output o0 , o1 ;

assign o0 = ( ~i0 & i1 ) | ( i0 & ~i1 ) ;
assign o1 = 1'b0 ;

endmodule
`
	v := emit(t, dense(t, []string{"00", "10", "10", "00"}), SOP)
	if diff := cmp.Diff(expected, v); diff != "" {
		t.Errorf("sop mismatch (-want +got):\n%s", diff)
	}
}

func TestSOPCover(t *testing.T) {
	c, err := table.ParseCover(
		[]string{"1-", "--"},
		[]string{"1~", "01"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := header + `module ckt( i0 , i1 , o0 , o1 );

input i0 , i1 ;
output o0 , o1 ;

assign o0 = ( i0 ) ;
assign o1 = ( 1'b1 ) ;

endmodule
`
	v := emit(t, c, SOP)
	if diff := cmp.Diff(expected, v); diff != "" {
		t.Errorf("sop mismatch (-want +got):\n%s", diff)
	}
}

func TestConstant(t *testing.T) {
	expected := header + `module ckt( o0 , o1 );

output o0 , o1 ;

assign { o0 , o1 } = 2'b10 ;

endmodule
`
	for _, mode := range []Mode{Case, SOP} {
		v := emit(t, dense(t, []string{"10"}), mode)
		if diff := cmp.Diff(expected, v); diff != "" {
			t.Errorf("%s: constant mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

func TestDeterministic(t *testing.T) {
	d := dense(t, []string{"011", "100", "111", "000", "010", "001", "110",
		"101"})
	for _, mode := range []Mode{Case, SOP} {
		a := emit(t, d, mode)
		b := emit(t, d, mode)
		if a != b {
			t.Errorf("%s: output is not deterministic", mode)
		}
		c := emit(t, table.FromDense(d), mode)
		if mode == SOP && a != c {
			t.Errorf("dense and cover SOP differ:\n%s\n%s", a, c)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"case", "sop"} {
		m, err := ParseMode(name)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != name {
			t.Errorf("ParseMode(%s)=%s", name, m)
		}
	}
	if _, err := ParseMode("pla"); err == nil {
		t.Errorf("ParseMode(pla) succeeded")
	}
	if err := Emit(&bytes.Buffer{}, dense(t, []string{"0", "1"}), Mode(7)); err == nil {
		t.Errorf("Emit with invalid mode succeeded")
	}
}

func TestConstantCover(t *testing.T) {
	c, err := table.ParseCover([]string{"", "", ""},
		[]string{"10", "01", "~0"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		mode  Mode
		value string
	}{
		{mode: Case, value: "2'b10"},
		{mode: SOP, value: "2'b11"},
	}
	for _, test := range tests {
		expected := header + `module ckt( o0 , o1 );

output o0 , o1 ;

assign { o0 , o1 } = ` + test.value + ` ;

endmodule
`
		v := emit(t, c, test.mode)
		if diff := cmp.Diff(expected, v); diff != "" {
			t.Errorf("%s: constant cover mismatch (-want +got):\n%s",
				test.mode, diff)
		}
	}
}

var identifierTests = []struct {
	name string
	pla  string
}{
	{
		name: "ckt",
		pla:  ".i 2\n.o 1\n.ilb a[0] b.c\n.p 1\n11 1\n.end\n",
	},
	{
		name: "ckt",
		pla:  ".i 1\n.o 1\n.ob 1out\n.p 1\n1 1\n.end\n",
	},
	{
		name: "my-mod",
		pla:  ".i 1\n.o 1\n.p 1\n1 1\n.end\n",
	},
	{
		name: "two words",
		pla:  ".i 1\n.o 1\n.p 1\n1 1\n.end\n",
	},
}

func TestInvalidIdentifiers(t *testing.T) {
	for idx, test := range identifierTests {
		c, err := pla.Parse(strings.NewReader(test.pla), "test", test.name)
		if err != nil {
			t.Fatalf("test %d: %v", idx, err)
		}
		for _, mode := range []Mode{Case, SOP} {
			var buf bytes.Buffer
			err := Emit(&buf, c, mode)
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("test %d: %s: expected ErrInvalidIdentifier, got %v",
					idx, mode, err)
			}
		}
	}

	d, err := table.NewDense([]string{"0", "1"}, &table.Options{
		Name:   "sel$",
		Inputs: []string{"_a1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	emit(t, d, SOP)
}
