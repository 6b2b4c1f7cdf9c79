package formaterror

import "strings"

// FormatError maps raw store errors onto the field-level messages the forms
// re-render with.
func FormatError(err string) map[string]string {
	errorMessages := make(map[string]string)

	lowered := strings.ToLower(err)
	if strings.Contains(lowered, "username") {
		errorMessages["Taken_username"] = "Username Already Taken"
	}
	if strings.Contains(lowered, "email") {
		errorMessages["Taken_email"] = "Email Already Taken"
	}
	if strings.Contains(lowered, "hashedpassword") || strings.Contains(lowered, "password") {
		errorMessages["Incorrect_password"] = "Incorrect Password"
	}
	if len(errorMessages) == 0 {
		errorMessages["Incorrect_details"] = "Incorrect Details"
	}
	return errorMessages
}
