package emailsending

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

const (
	EMAIL_TYPE_PASSWORD_RESET   = "password-reset"
	EMAIL_TYPE_PASSWORD_CHANGED = "password-changed"
)

const passwordResetTemplate = `
<p>Hello,</p>
<p>We received a request to reset the password for your account.</p>
<p>Your one time code is: <strong>{{.code}}</strong></p>
<p>The code is valid for {{.validMinutes}} minutes. If you did not request a password reset, you can ignore this message.</p>
`

const passwordChangedTemplate = `
<p>Hello,</p>
<p>The password for your account was just changed. If this was not you, please contact us immediately.</p>
`

var defaultTemplates = map[string]struct {
	subject     string
	templateDef string
}{
	EMAIL_TYPE_PASSWORD_RESET:   {"Your password reset code", passwordResetTemplate},
	EMAIL_TYPE_PASSWORD_CHANGED: {"Your password was changed", passwordChangedTemplate},
}

func ResolveTemplate(tempName string, templateDef string, contentInfos map[string]string) (content string, err error) {
	if strings.TrimSpace(templateDef) == "" {
		return "", errors.New("empty template `" + tempName + "`")
	}
	tmpl, err := template.New(tempName).Parse(templateDef)
	if err != nil {
		err = fmt.Errorf("error when parsing template %s: %v", tempName, err)
		return "", err
	}
	var tpl bytes.Buffer

	err = tmpl.Execute(&tpl, contentInfos)
	if err != nil {
		err = fmt.Errorf("error during executing template %s: %v", tempName, err)
		return "", err
	}
	return tpl.String(), nil
}
