/*
Package workos provides a client for the WorkOS Single Sign-On API.

# Overview

The package is organized around two types:

  - WorkOS: holds the secret key, the API base URL, the optional API key and
    the HTTP transport shared by every client
  - SSO: performs the SSO calls using a *WorkOS

Create a configuration holder and an SSO client:

	w := workos.New("sk_test_...")
	sso := workos.NewSSO(w)

Point the holder at another endpoint, such as the local emulator, with
NewWithURL:

	w := workos.NewWithURL("sk_test_...", "http://localhost:8080")

# SSO Flow

Send the user to the authorization URL:

	authURL, err := sso.GetAuthorizationURL(workos.AuthorizationURLOptions{
		ClientID:    "client_123",
		RedirectURI: "https://app.example.com/callback",
		Connection:  "conn_01E4ZCR3C56J083X43JQXF3JK5",
		State:       state,
	})

Exchange the code received on the redirect URI:

	code, state, err := workos.ParseAuthorizationCallback(callbackURL)
	res, err := sso.GetProfileAndToken(ctx, code, "client_123")
	fmt.Println(res.Profile.Email)

Fetch the profile again later with the access token:

	profile, err := sso.GetProfile(ctx, res.AccessToken)

Access tokens are signed JWTs. GetJWKSURL returns the key set that verifies
them:

	jwksURL, err := sso.GetJWKSURL("client_123")

# Connections

Connection lookups need an API key, set explicitly on the holder:

	w.SetAPIKey("sk_test_...")
	conn, err := sso.GetConnection(ctx, "conn_01E4ZCR3C56J083X43JQXF3JK5")

# Error Handling

Every operation returns one of these typed errors on an expected failure:

  - *ConfigurationError: a precondition was not met (no API key, empty argument)
  - *RequestError: the API answered with a status outside 2xx
  - *DeserializationError: the body did not match the expected shape, including
    connection types and states outside the known set

Example:

	conn, err := sso.GetConnection(ctx, id)
	var reqErr *workos.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
		// no such connection
	}

Errors are never logged by the package. A debug line per round trip is written
to the logger found in the context (see slogx.WithContext).

# Rate Limiting

Set Limiter to keep a process under its own request budget:

	w.Limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 10)

# Thread Safety

SSO methods may be called concurrently. SetAPIKey mutates the holder and must
not race with calls that read the key.
*/
package workos
