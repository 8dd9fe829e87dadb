/*
Package dirsdk provides a typed HTTP client for the account directory
service, plus the wire types shared between the client and the server
handlers.

Create a Client for anonymous operations (signup, login, health checks):

	client := dirsdk.NewClient("http://localhost:8080")

	account, err := client.Signup(ctx, dirsdk.SignupRequest{
		Email:    "ann@example.com",
		Password: "password123",
		Name:     "Ann",
	})

Identified operations carry the caller's identity via headers. The service
trusts these as already authenticated, so use WithIdentity to act as a
specific caller:

	me := client.WithIdentity(account.ID, account.Role)
	accounts, err := me.ListAccounts(ctx, dirsdk.ListAccountsQuery{Role: "admin"})

Admin-gated mutations (UpdateAccount, DeleteAccount) fail with HTTP 403
unless the identity role is "admin".

Non-2xx responses are returned as *APIError, so callers can branch on the
status code:

	_, err := me.GetAccount(ctx, id)
	var apiErr *dirsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// no such account
	}
*/
package dirsdk
