package mqtt

import "fmt"

// TopicPrefix is the base for all cloudlight topics.
//
// Topic layout:
//
//	cloudlight/state{resourceURI}            retained light state
//	cloudlight/set{resourceURI}              inbound resource writes
//	cloudlight/cloud/{deviceID}/status       cloud session status notifications
//	cloudlight/cloud/{deviceID}/provision    provisioning requests from the device
//	cloudlight/fota/{deviceID}/command       firmware update commands to the device
//	cloudlight/system/status                 runtime online/offline (LWT)
const TopicPrefix = "cloudlight"

// Topics provides builders for cloudlight MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
type Topics struct{}

// ResourceState returns the retained state topic for a resource URI.
//
// Example: cloudlight/state/light/1
func (Topics) ResourceState(uri string) string {
	return fmt.Sprintf("%s/state%s", TopicPrefix, uri)
}

// ResourceSet returns the topic inbound writes for a resource arrive on.
//
// Example: cloudlight/set/light/1
func (Topics) ResourceSet(uri string) string {
	return fmt.Sprintf("%s/set%s", TopicPrefix, uri)
}

// CloudStatus returns the topic the cloud side publishes session status on.
//
// Example: cloudlight/cloud/dev-01/status
func (Topics) CloudStatus(deviceID string) string {
	return fmt.Sprintf("%s/cloud/%s/status", TopicPrefix, deviceID)
}

// CloudProvision returns the topic the device publishes provisioning
// requests on.
//
// Example: cloudlight/cloud/dev-01/provision
func (Topics) CloudProvision(deviceID string) string {
	return fmt.Sprintf("%s/cloud/%s/provision", TopicPrefix, deviceID)
}

// FOTACommand returns the topic firmware update commands arrive on.
//
// Example: cloudlight/fota/dev-01/command
func (Topics) FOTACommand(deviceID string) string {
	return fmt.Sprintf("%s/fota/%s/command", TopicPrefix, deviceID)
}

// SystemStatus returns the runtime status topic used for LWT and
// online/offline announcements.
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/system/status", TopicPrefix)
}

// AllResourceStates returns a pattern matching every resource state topic.
//
// Pattern: cloudlight/state/#
func (Topics) AllResourceStates() string {
	return fmt.Sprintf("%s/state/#", TopicPrefix)
}
