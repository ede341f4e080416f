// Package dates rewrites the dates found in a CSV file to a single target date.
//
// Every cell is searched for dd-mm-yyyy or dd/mm/yyyy. The first date of a cell is
// replaced by the target date written with the same separator. The header row is kept
// as is.
//
// # HTTP Endpoints
//
//   - POST /api/date-converter/update : Multipart file and date (dd-mm-yyyy), returns the rewritten CSV.
package dates
