package httpline

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestRequestLineToNode(t *testing.T) {
	line := RequestLine{Method: "GET", URI: "/api", Version: ProtocolVersion{1, 1}}

	node := RequestLineToNode(line)
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("node = %T, want *ast.ObjectNode", node)
	}

	props := obj.Properties()
	if lit, ok := props["method"].(*ast.LiteralNode); !ok || lit.Value() != "GET" {
		t.Errorf("method property = %v, want GET", props["method"])
	}
	if lit, ok := props["type"].(*ast.LiteralNode); !ok || lit.Value() != "request-line" {
		t.Errorf("type property = %v, want request-line", props["type"])
	}
}

func TestRequestLine_NodeRoundTrip(t *testing.T) {
	want := RequestLine{Method: "POST", URI: "/api/users", Version: ProtocolVersion{1, 0}}

	got, err := NodeToRequestLine(RequestLineToNode(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestStatusLine_NodeRoundTrip(t *testing.T) {
	tests := []StatusLine{
		{ProtocolVersion{1, 1}, 200, "OK"},
		{ProtocolVersion{1, 1}, 204, ""},
		{ProtocolVersion{1, 0}, 404, "Not Found"},
	}

	for _, want := range tests {
		got, err := NodeToStatusLine(StatusLineToNode(want))
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", want, err)
		}
		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestNodeToRequestLine_WrongNodeType(t *testing.T) {
	if _, err := NodeToRequestLine(ast.NewLiteralNode("GET", ast.Position{})); err == nil {
		t.Error("expected error for non-object node, got none")
	}
	if _, err := NodeToStatusLine(ast.NewLiteralNode(int64(200), ast.Position{})); err == nil {
		t.Error("expected error for non-object node, got none")
	}
}

func TestHeaderToNode(t *testing.T) {
	h, err := ParseHeader("Host: example.com", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node, err := HeaderToNode(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("node = %T, want *ast.ObjectNode", node)
	}
	props := obj.Properties()
	if lit, ok := props["name"].(*ast.LiteralNode); !ok || lit.Value() != "Host" {
		t.Errorf("name property = %v, want Host", props["name"])
	}
	if lit, ok := props["value"].(*ast.LiteralNode); !ok || lit.Value() != "example.com" {
		t.Errorf("value property = %v, want example.com", props["value"])
	}
}

func TestHeaderToNode_MalformedSurfacesHere(t *testing.T) {
	h, err := ParseHeader("no colon at all", nil)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if _, err := HeaderToNode(h); err == nil {
		t.Error("expected deferred parse error, got none")
	}
}
