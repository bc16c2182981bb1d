package api

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// The request name becomes a Kubernetes namespace, so it must be a
// DNS-1123 label (lowercase alphanumerics and hyphens, 1-63 chars).
var dnsLabelPattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

const maxNameLength = 63

// Sentinel error for an invalid deployment request
var ErrInvalidRequest = errors.New("invalid deployment request")

// DeploymentRequest is what a student submits: a namespace name plus raw
// numeric resource amounts (cpu in cores, memory in MB, storage in GB).
// It is immutable once submitted.
type DeploymentRequest struct {
	Name    string  `json:"name"`
	CPU     float64 `json:"cpu"`
	Memory  int     `json:"memory"`
	Storage int     `json:"storage"`
}

// Validate checks the request against the backend's own rules so obviously
// bad input never leaves the client.
func (r DeploymentRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if len(r.Name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidRequest, maxNameLength)
	}
	if !dnsLabelPattern.MatchString(r.Name) {
		return fmt.Errorf("%w: name must be a DNS-1123 label (lowercase letters, digits, hyphens)", ErrInvalidRequest)
	}
	if r.CPU <= 0 {
		return fmt.Errorf("%w: cpu must be > 0 cores", ErrInvalidRequest)
	}
	if r.Memory <= 0 {
		return fmt.Errorf("%w: memory must be a positive integer (MB)", ErrInvalidRequest)
	}
	if r.Storage <= 0 {
		return fmt.Errorf("%w: storage must be a positive integer (GB)", ErrInvalidRequest)
	}
	return nil
}

// TranslatedResources holds the request's resources in platform units, the
// same translation the backend applies before creating the workload.
type TranslatedResources struct {
	CPU     string
	Memory  string
	Storage string
}

// Translate converts the raw numeric amounts into platform resource
// strings: cpu < 1 core becomes millicores ("500m"), whole cores drop the
// fraction, MB becomes "Mi" and GB becomes "Gi". CPU values round half to
// even, the same tie-breaking the backend applies, so both sides always
// produce identical strings.
func (r DeploymentRequest) Translate() TranslatedResources {
	var cpu string
	if r.CPU < 1 {
		cpu = fmt.Sprintf("%dm", int(math.RoundToEven(r.CPU*1000)))
	} else {
		cpu = strconv.Itoa(int(math.RoundToEven(r.CPU)))
	}
	return TranslatedResources{
		CPU:     cpu,
		Memory:  fmt.Sprintf("%dMi", r.Memory),
		Storage: fmt.Sprintf("%dGi", r.Storage),
	}
}

// StudentRecord is the read-only projection of one persisted record as the
// admin listing returns it. The backend owns it; the client only caches a
// transient copy.
type StudentRecord struct {
	Name      string
	CPU       float64
	Memory    int
	Storage   int
	K8sCPU    string
	K8sMemory string
	K8sStore  string
	DBStatus  string
	LivePhase string
}

// StudentRecordsFromBody projects the raw admin listing into records. The
// second return value reports whether the body had the expected list-of-
// objects shape; anything else (scalar, error object) means the caller is
// not looking at a real listing.
func StudentRecordsFromBody(body interface{}) ([]StudentRecord, bool) {
	list, ok := body.([]interface{})
	if !ok {
		return nil, false
	}
	records := make([]StudentRecord, 0, len(list))
	for _, item := range list {
		doc, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}
		rec := StudentRecord{
			Name:      stringAt(doc, "name"),
			DBStatus:  stringAt(doc, "db_status"),
			LivePhase: stringAt(doc, "live_phase"),
		}
		if rec.DBStatus == "" {
			rec.DBStatus = stringAt(doc, "status")
		}
		if numeric, ok := doc["input_numeric"].(map[string]interface{}); ok {
			rec.CPU = floatAt(numeric, "cpu")
			rec.Memory = int(floatAt(numeric, "memory_mb"))
			rec.Storage = int(floatAt(numeric, "storage_gb"))
		}
		if k8s, ok := doc["k8s_resources"].(map[string]interface{}); ok {
			rec.K8sCPU = stringAt(k8s, "cpu")
			rec.K8sMemory = stringAt(k8s, "memory")
			rec.K8sStore = stringAt(k8s, "storage")
		}
		records = append(records, rec)
	}
	return records, true
}

func stringAt(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

func floatAt(doc map[string]interface{}, key string) float64 {
	f, _ := doc[key].(float64)
	return f
}
