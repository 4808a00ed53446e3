// Package factory provides constructors shared by tests across the daemon.
package factory

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification containing the specified method and parameters.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// ExecuteCommandParams is a factory for the params of a host command, with arguments encoded the way the router delivers them.
func ExecuteCommandParams(command string, args ...interface{}) *protocol.ExecuteCommandParams {
	params := &protocol.ExecuteCommandParams{Command: command}
	for _, arg := range args {
		params.Arguments = append(params.Arguments, arg)
	}
	return params
}
