// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalid     = errors.New("参数校验失败")
	ErrSalaryRange = fmt.Errorf("%w: 最低薪资不能高于最高薪资", ErrInvalid)
	ErrTooManyTags = fmt.Errorf("%w: 标签最多 %d 个", ErrInvalid, MaxTags)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return JobType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("experience", func(fl validator.FieldLevel) bool {
		return ExperienceLevel(fl.Field().String()).Valid()
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(JobDraft)
		if d.SalaryMin != nil && d.SalaryMax != nil && *d.SalaryMin > *d.SalaryMax {
			sl.ReportError(d.SalaryMin, "salaryMin", "SalaryMin", "salaryrange", "")
		}
	}, JobDraft{})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	fields := make([]string, 0, len(ves))
	for _, fe := range ves {
		switch fe.Tag() {
		case "salaryrange":
			return ErrSalaryRange
		case "max":
			if fe.Field() == "Tags" {
				return ErrTooManyTags
			}
		}
		fields = append(fields, fmt.Sprintf("%s(%s)", lowerFirst(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
}

func invalidf(field, val string) error {
	return fmt.Errorf("%w: %s 取值非法 %q", ErrInvalid, field, val)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
