/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Kind identifies a primitive field kind. It is the identity a TypeMap
// keys its base sample layer by, and the identity the reverse map yields
// when re-rendering a resolved value.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it never resolves to a sample.
	KindInvalid Kind = iota
	// KindChoice is an enumerable text field. Its canonical sample is the
	// same as KindString; on reverse lookup KindString wins.
	KindChoice
	// KindString is a plain text field.
	KindString
	// KindFloat is a floating-point number field.
	KindFloat
	// KindBool is a boolean field.
	KindBool
	// KindInteger is a whole-number field.
	KindInteger
	// KindUUID is a unique-identifier field.
	KindUUID
	// KindDateTime is a timestamp field.
	KindDateTime
	// KindDate is a calendar-date field.
	KindDate
	// KindTime is a time-of-day field.
	KindTime
	// KindDuration is a time-span field.
	KindDuration
)

// kindNames indexes display names by Kind.
var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindChoice:   "choice",
	KindString:   "string",
	KindFloat:    "float",
	KindBool:     "bool",
	KindInteger:  "integer",
	KindUUID:     "uuid",
	KindDateTime: "datetime",
	KindDate:     "date",
	KindTime:     "time",
	KindDuration: "duration",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Kinds returns all primitive kinds in declaration order. The order is
// significant for reverse-map construction: later kinds win on sample
// collisions.
func Kinds() []Kind {
	return []Kind{
		KindChoice, KindString, KindFloat, KindBool, KindInteger,
		KindUUID, KindDateTime, KindDate, KindTime, KindDuration,
	}
}

// DocType identifies an abstract documentation-level type, the way an
// OpenAPI schema would spell it. Computed fields may carry one as an
// explicit annotation that takes priority over the accessor return type.
type DocType uint8

const (
	// DocNone annotates a field that intentionally has no value.
	DocNone DocType = iota
	// DocStr is free-form text.
	DocStr
	// DocDouble is a floating-point number.
	DocDouble
	// DocBool is a boolean.
	DocBool
	// DocBinary is raw bytes; samples coerce to text on output.
	DocBinary
	// DocInt is a whole number.
	DocInt
	// DocUUID is a unique identifier.
	DocUUID
	// DocDateTime is a timestamp.
	DocDateTime
	// DocDate is a calendar date.
	DocDate
	// DocTime is a time of day.
	DocTime
	// DocDuration is a time span.
	DocDuration
	// DocObject is an open mapping.
	DocObject
	// DocAny is an unconstrained value; it samples as an open mapping.
	DocAny
)

// docTypeNames indexes display names by DocType.
var docTypeNames = [...]string{
	DocNone:     "none",
	DocStr:      "str",
	DocDouble:   "double",
	DocBool:     "bool",
	DocBinary:   "binary",
	DocInt:      "int",
	DocUUID:     "uuid",
	DocDateTime: "datetime",
	DocDate:     "date",
	DocTime:     "time",
	DocDuration: "duration",
	DocObject:   "object",
	DocAny:      "any",
}

// String returns the display name of the doc type.
func (d DocType) String() string {
	if int(d) < len(docTypeNames) {
		return docTypeNames[d]
	}
	return "none"
}
