package client

import "encoding/json"

// ContainerGroup represents a container group in the response
type ContainerGroup struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	DisplayName     string           `json:"display_name"`
	CurrentState    ContainerState   `json:"current_state"`
	Container       Container        `json:"container"`
	QueueConnection *QueueConnection `json:"queue_connection"`
	Replicas        int              `json:"replicas"`
	RestartPolicy   string           `json:"restart_policy"`
	CreateTime      string           `json:"create_time"`
	UpdateTime      string           `json:"update_time"`
}

// QueueName is the name of the connected queue, or "" when none.
func (cg ContainerGroup) QueueName() string {
	if cg.QueueConnection == nil {
		return ""
	}
	return cg.QueueConnection.QueueName
}

type ContainerState struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	FinishTime  string `json:"finish_time"`
}

type Container struct {
	Image     string            `json:"image"`
	Command   []string          `json:"command"`
	Resources ContainerResource `json:"resources"`
}

type ContainerResource struct {
	CPU        int      `json:"cpu"`
	Memory     int      `json:"memory"`
	GPUClasses []string `json:"gpu_classes"`
}

type QueueConnection struct {
	Path      string `json:"path"`
	Port      int    `json:"port"`
	QueueName string `json:"queue_name"`
}

type ContainerGroupList struct {
	Items []ContainerGroup `json:"items"`
}

// Instance is a server running a container group's workload
type Instance struct {
	MachineID  string `json:"machine_id"`
	State      string `json:"state"`
	UpdateTime string `json:"update_time"`
	Version    int    `json:"version"`
	Ready      *bool  `json:"ready"`
	Started    *bool  `json:"started"`
}

type InstanceList struct {
	Instances []Instance `json:"instances"`
}

type Queue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	CreateTime  string `json:"create_time"`
	UpdateTime  string `json:"update_time"`
}

type QueueList struct {
	Items []Queue `json:"items"`
}

type Job struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Input      json.RawMessage `json:"input"`
	Output     json.RawMessage `json:"output"`
	Metadata   json.RawMessage `json:"metadata"`
	Webhook    string          `json:"webhook"`
	CreateTime string          `json:"create_time"`
	UpdateTime string          `json:"update_time"`
}

type GPUClass struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsHighDemand bool   `json:"is_high_demand"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	CreateTime  string `json:"create_time"`
}

type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LogToken struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Node is a machine as seen by the privileged node API
type Node struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GPUClass   string `json:"gpu_class"`
	State      string `json:"state"`
	UpdateTime string `json:"update_time"`
}
