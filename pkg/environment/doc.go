// Package environment names the deployment environments a service can run in.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//
// Environment implements encoding.TextUnmarshaler, so it can be used directly
// as a field type in env-tagged configuration structs.
package environment
