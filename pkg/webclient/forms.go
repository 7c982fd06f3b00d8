package webclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrTermsNotAccepted = errors.New("Please agree to the Terms of Service and Privacy Policy.")
	ErrPasswordMismatch = errors.New("Passwords do not match.")
)

// UnknownCar is sent when no car is selected for a test drive.
const UnknownCar = "Unknown Car"

// LoginForm stores the returned token and user in the client's store.
func LoginForm(client *Client) *FormConfig {
	return &FormConfig{
		ID:             "loginForm",
		Endpoint:       "/login",
		RequiredFields: []string{"email", "password"},
		FieldMapping:   map[string]string{"email": "authEmail", "password": "authPassword"},
		FieldOrder:     []string{"email", "password"},
		ClearOnSuccess: true,
		SuccessModal:   "authModal",
		SuccessTimeout: time.Second,
		OnSuccess: func(result *Result, _ Form) error {
			return storeLogin(client, result)
		},
	}
}

func storeLogin(client *Client, result *Result) error {
	token, _ := result.Data["token"].(string)
	if token == "" {
		return errors.New("login response has no token")
	}
	raw, err := json.Marshal(result.Data["user"])
	if err != nil {
		return err
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return fmt.Errorf("decode login user: %w", err)
	}
	return client.Store().Save(token, &user)
}

// RegisterForm checks the terms checkbox and the password confirmation
// before anything is sent.
func RegisterForm() *FormConfig {
	return &FormConfig{
		ID:             "registerForm",
		Endpoint:       "/register",
		RequiredFields: []string{"firstName", "lastName", "email", "phone", "password", "confirmPassword"},
		FieldMapping: map[string]string{
			"firstName":       "authFirstName",
			"lastName":        "authLastName",
			"email":           "authRegisterEmail",
			"phone":           "authPhoneNumber",
			"password":        "authRegisterPassword",
			"confirmPassword": "authConfirmPassword",
			"termsAgree":      "authTermsAgree",
		},
		FieldOrder:     []string{"firstName", "lastName", "email", "phone", "password", "confirmPassword", "termsAgree"},
		ClearOnSuccess: true,
		SuccessTimeout: 1500 * time.Millisecond,
		Transform: func(data map[string]string) (map[string]any, error) {
			if !checked(data["termsAgree"]) {
				return nil, ErrTermsNotAccepted
			}
			if data["password"] != data["confirmPassword"] {
				return nil, ErrPasswordMismatch
			}
			return map[string]any{
				"firstName": data["firstName"],
				"lastName":  data["lastName"],
				"email":     data["email"],
				"phone":     data["phone"],
				"password":  data["password"],
			}, nil
		},
	}
}

func checked(v string) bool {
	if strings.EqualFold(v, "on") || strings.EqualFold(v, "yes") || strings.EqualFold(v, "y") {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func ContactForm() *FormConfig {
	return &FormConfig{
		ID:             "contactForm",
		Endpoint:       "/contact",
		RequireAuth:    true,
		RequiredFields: []string{"name", "email", "phone", "interest", "message"},
		FieldMapping: map[string]string{
			"name": "name", "email": "email", "phone": "phone", "interest": "interest", "message": "message",
		},
		FieldOrder:     []string{"name", "email", "phone", "interest", "message"},
		ClearOnSuccess: true,
	}
}

// TestDriveForm reads the car model from the car detail heading, e.g.
// "Civic Details", falling back to UnknownCar.
func TestDriveForm() *FormConfig {
	return &FormConfig{
		ID:             "testDriveForm",
		Endpoint:       "/test-drive",
		RequireAuth:    true,
		RequiredFields: []string{"name", "email", "phone", "preferredDate", "preferredTime"},
		FieldMapping: map[string]string{
			"name":          "testDriveName",
			"email":         "testDriveEmail",
			"phone":         "testDrivePhone",
			"preferredDate": "testDriveDate",
			"preferredTime": "testDriveTime",
			"carModel":      "carDetailModalLabel",
		},
		FieldOrder:     []string{"name", "email", "phone", "preferredDate", "preferredTime", "carModel"},
		ClearOnSuccess: true,
		SuccessModal:   "testDriveModal",
		SuccessTimeout: 1500 * time.Millisecond,
		Transform: func(data map[string]string) (map[string]any, error) {
			body := make(map[string]any, len(data))
			for k, v := range data {
				body[k] = v
			}
			model := strings.TrimSpace(strings.Replace(data["carModel"], " Details", "", 1))
			if model == "" {
				model = UnknownCar
			}
			body["carModel"] = model
			return body, nil
		},
	}
}

// FinancingForm sends the optional message only when it is filled in.
func FinancingForm() *FormConfig {
	return &FormConfig{
		ID:             "financingForm",
		Endpoint:       "/financing-request",
		RequireAuth:    true,
		RequiredFields: []string{"name", "email", "phone", "amount", "term"},
		FieldMapping: map[string]string{
			"name":    "financingName",
			"email":   "financingEmail",
			"phone":   "financingPhone",
			"amount":  "financingAmount",
			"term":    "financingTerm",
			"message": "financingMessage",
		},
		FieldOrder:     []string{"name", "email", "phone", "amount", "term", "message"},
		ClearOnSuccess: true,
		SuccessModal:   "serviceDetailModal",
		SuccessTimeout: 3 * time.Second,
		Transform: func(data map[string]string) (map[string]any, error) {
			body := make(map[string]any, len(data))
			for k, v := range data {
				if k == "message" && v == "" {
					continue
				}
				body[k] = v
			}
			return body, nil
		},
	}
}
