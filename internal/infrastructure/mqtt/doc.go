// Package mqtt provides MQTT broker connectivity for the cloudlight runtime.
//
// The broker carries three concerns:
//
//   - the cloud session transport (status notifications in, provisioning
//     requests out; see internal/cloud)
//   - retained light state for anything observing the device
//   - firmware update commands toward the FOTA gateway
//
// The client wraps eclipse/paho.mqtt.golang with auto-reconnect,
// re-subscription, a Last Will and Testament on the system status topic
// and panic recovery around message handlers.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topics := mqtt.Topics{}
//	client.Subscribe(topics.CloudStatus(deviceID), 1, onStatus)
//	client.PublishRetained(topics.ResourceState("/light/1"), payload)
//
// TLS should be enabled for any non-local broker; anonymous access is for
// development only.
package mqtt
