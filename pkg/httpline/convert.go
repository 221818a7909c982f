package httpline

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
)

// AST conversion for consumers that process message heads through Shape's
// schema tooling. A request line maps to
//
//	{ "type": "request-line", "method": "GET", "uri": "/api",
//	  "version": {"major": 1, "minor": 1} }
//
// and a status line to
//
//	{ "type": "status-line", "version": {"major": 1, "minor": 1},
//	  "statusCode": 200, "reason": "OK" }

var zeroPos = ast.Position{}

// RequestLineToNode converts a RequestLine to an AST ObjectNode.
func RequestLineToNode(line RequestLine) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request-line", zeroPos),
		"method":  ast.NewLiteralNode(line.Method, zeroPos),
		"uri":     ast.NewLiteralNode(line.URI, zeroPos),
		"version": versionToNode(line.Version),
	}, zeroPos)
}

// StatusLineToNode converts a StatusLine to an AST ObjectNode.
func StatusLineToNode(line StatusLine) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("status-line", zeroPos),
		"version":    versionToNode(line.Version),
		"statusCode": ast.NewLiteralNode(int64(line.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(line.Reason, zeroPos),
	}, zeroPos)
}

// HeaderToNode converts a Header to an AST ObjectNode. This forces the
// deferred name/value resolution, so a malformed header surfaces here.
func HeaderToNode(h *Header) (ast.SchemaNode, error) {
	name, err := h.Name()
	if err != nil {
		return nil, err
	}
	value, err := h.Value()
	if err != nil {
		return nil, err
	}
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"name":  ast.NewLiteralNode(name, zeroPos),
		"value": ast.NewLiteralNode(value, zeroPos),
	}, zeroPos)
}

func versionToNode(v ProtocolVersion) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"major": ast.NewLiteralNode(int64(v.Major), zeroPos),
		"minor": ast.NewLiteralNode(int64(v.Minor), zeroPos),
	}, zeroPos)
}

// NodeToRequestLine converts an AST ObjectNode back to a RequestLine.
func NodeToRequestLine(node ast.SchemaNode) (RequestLine, error) {
	props, err := objectProps(node)
	if err != nil {
		return RequestLine{}, err
	}

	line := RequestLine{}
	line.Method = stringProp(props, "method")
	line.URI = stringProp(props, "uri")
	if v, ok := props["version"]; ok {
		ver, err := nodeToVersion(v)
		if err != nil {
			return RequestLine{}, err
		}
		line.Version = ver
	}
	return line, nil
}

// NodeToStatusLine converts an AST ObjectNode back to a StatusLine.
func NodeToStatusLine(node ast.SchemaNode) (StatusLine, error) {
	props, err := objectProps(node)
	if err != nil {
		return StatusLine{}, err
	}

	line := StatusLine{}
	line.StatusCode = intProp(props, "statusCode")
	line.Reason = stringProp(props, "reason")
	if v, ok := props["version"]; ok {
		ver, err := nodeToVersion(v)
		if err != nil {
			return StatusLine{}, err
		}
		line.Version = ver
	}
	return line, nil
}

func nodeToVersion(node ast.SchemaNode) (ProtocolVersion, error) {
	props, err := objectProps(node)
	if err != nil {
		return ProtocolVersion{}, err
	}
	return ProtocolVersion{
		Major: intProp(props, "major"),
		Minor: intProp(props, "minor"),
	}, nil
}

func objectProps(node ast.SchemaNode) (map[string]ast.SchemaNode, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	return obj.Properties(), nil
}

func stringProp(props map[string]ast.SchemaNode, key string) string {
	if v, ok := props[key]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			s, _ := lit.Value().(string)
			return s
		}
	}
	return ""
}

func intProp(props map[string]ast.SchemaNode, key string) int {
	v, ok := props[key]
	if !ok {
		return 0
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return 0
	}
	switch n := lit.Value().(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}
