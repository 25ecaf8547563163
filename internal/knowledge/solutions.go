package knowledge

var solutionEntries = []Entry{
	{
		Category: "hardware", Subject: "laptop", IssueKey: "wont turn on",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Plug in the charger and check that the charging light comes on.",
				"Hold the power button for 15 seconds, release it, then press it once.",
				"Remove any USB devices, memory cards and external displays, then try again.",
				"If the screen stays black but you hear fans, connect an external monitor to rule out the display.",
				"If nothing happens, bring the laptop to the ICT office for a hardware check.",
			},
			"hp": {
				"Unplug the charger and disconnect all peripherals.",
				"Hold the power button for 15 seconds to drain residual power (HP hard reset).",
				"Reconnect only the charger and press the power button.",
				"If the caps lock or num lock light blinks, count the blinks: HP uses blink codes to report hardware faults.",
				"Press Windows + B while holding the power button for 3 seconds to trigger an HP BIOS recovery.",
				"If it still does not start, run HP PC Hardware Diagnostics (press F2 at power on) or bring it to the ICT office.",
			},
			"dell": {
				"Unplug the adapter and hold the power button for 20 seconds to drain flea power.",
				"Reconnect the adapter and check that the adapter LED is solid white.",
				"Press the power button and watch the diagnostic lights; note any amber and white blink pattern.",
				"Hold Fn and press the power button to run the Dell ePSA pre-boot diagnostics.",
				"Bring the laptop and the blink pattern to the ICT office if the diagnostics report a failure.",
			},
			"lenovo": {
				"Disconnect the charger and all peripherals.",
				"Insert a straightened paper clip into the emergency reset hole on the bottom case for 10 seconds.",
				"Reconnect the charger, wait one minute, then press the power button.",
				"If the power LED blinks three times, the battery is critically low: leave it charging for 30 minutes.",
				"If nothing works, bring the laptop to the ICT office.",
			},
			"asus": {
				"Remove the charger and hold the power button for 40 seconds to perform an EC reset.",
				"Reconnect the charger and check the charging indicator.",
				"Press the power button once and wait up to one minute for the first boot.",
				"If the screen stays dark, press Fn + F7 in case the display was switched off.",
				"Bring the laptop to the ICT office if it still does not start.",
			},
			"acer": {
				"Unplug the charger and press the battery reset pinhole on the bottom case for 4 seconds.",
				"Reconnect the charger and leave it for a few minutes.",
				"Press the power button and check for the Acer logo.",
				"Bring the laptop to the ICT office if there is no sign of power.",
			},
			"apple": {
				"Connect the USB-C or MagSafe charger and wait at least 10 minutes.",
				"Press and hold the power button for 10 seconds, then release and press it again.",
				"Reset the SMC (Intel Macs): hold Shift + Control + Option and the power button for 10 seconds.",
				"Try a different charger or outlet.",
				"Bring the MacBook to the ICT office if it shows no sign of life.",
			},
		},
	},
	{
		Category: "hardware", Subject: "desktop", IssueKey: "wont turn on",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Check that the power cable is firmly connected at the wall and at the back of the computer.",
				"Make sure the power supply switch at the back is set to I (on).",
				"Try another outlet or bypass the extension cord or AVR.",
				"Check that the monitor is on and connected to the correct input.",
				"If there are no lights or fans at all, report it to the ICT office.",
			},
		},
	},
	{
		Category: "hardware", Subject: "phone", IssueKey: "wont turn on",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Charge the phone for at least 30 minutes with a known working cable.",
				"Hold the power button for 20 seconds to force a restart.",
				"Try holding power and volume down together for 15 seconds.",
				"If the screen lights up but does not boot, back up what you can and ask the ICT office about a reset.",
			},
			"samsung": {
				"Charge the phone for 30 minutes with the original Samsung charger.",
				"Hold the side key and volume down together for 10 seconds to force a restart.",
				"If the Samsung logo appears and loops, boot into recovery (volume up + side key) and choose Wipe cache partition.",
				"Visit an authorized Samsung service center if it still does not start.",
			},
			"apple": {
				"Charge the iPhone for one hour with an Apple-certified cable.",
				"Press and release volume up, press and release volume down, then hold the side button until the Apple logo appears.",
				"If it shows a cable and computer icon, connect it to a computer and use Finder or iTunes to update it.",
				"Visit an Apple authorized service provider if it still does not respond.",
			},
		},
	},
	{
		Category: "hardware", Subject: "laptop", IssueKey: "overheating",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Use the laptop on a hard, flat surface so the vents are not blocked.",
				"Close heavy programs and browser tabs you are not using.",
				"Clean the vents with compressed air.",
				"Use a cooling pad if you work for long hours.",
				"If it shuts down from heat, have the ICT office check the fan and thermal paste.",
			},
		},
	},
	{
		Category: "hardware", Subject: "desktop", IssueKey: "overheating",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Keep at least 10 cm of space around the case vents.",
				"Check that all case fans spin when the computer is on.",
				"Remove dust from the filters and heatsink with compressed air.",
				"Report repeated heat shutdowns to the ICT office.",
			},
		},
	},
	{
		Category: "hardware", Subject: "phone", IssueKey: "overheating",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Remove the case and stop charging while it cools down.",
				"Close apps running in the background.",
				"Avoid using the phone in direct sunlight or while charging.",
				"Turn down screen brightness and turn off hotspot when not needed.",
			},
		},
	},
	{
		Category: "hardware", Subject: "laptop", IssueKey: "battery issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Try a different outlet and check the charger cable for damage.",
				"Shut down the laptop, unplug it, hold the power button for 15 seconds, then plug it in again.",
				"Check the battery health report in the system settings.",
				"If the battery is swollen, stop using it and bring it to the ICT office immediately.",
			},
			"hp": {
				"Open HP Support Assistant and run the Battery Check.",
				"Update the BIOS through HP Support Assistant.",
				"Turn off Adaptive Battery Optimizer in the BIOS if the battery stops charging at 80%.",
				"Bring the laptop to the ICT office if the check reports Replace.",
			},
			"dell": {
				"Check the battery status in Dell Power Manager.",
				"Make sure Primarily AC Use mode is off if the battery stops charging early.",
				"Run the ePSA diagnostics (hold Fn and press power) to test the battery.",
				"Bring the laptop to the ICT office if the diagnostics report a battery fault.",
			},
			"apple": {
				"Open System Settings > Battery and check Battery Health.",
				"Turn off Optimized Battery Charging if you need a full charge now.",
				"Reset the SMC on Intel Macs.",
				"If the status reads Service Recommended, visit an Apple authorized service provider.",
			},
		},
	},
	{
		Category: "hardware", Subject: "phone", IssueKey: "battery issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Clean the charging port gently with a dry brush.",
				"Try a different cable and charger.",
				"Check which apps use the most battery in the battery settings.",
				"Restart the phone and turn on battery saver.",
			},
			"samsung": {
				"Open Settings > Battery and device care and tap Optimize now.",
				"Turn on Adaptive battery and Protect battery.",
				"Use Samsung Members > Diagnostics to check the battery status.",
			},
			"apple": {
				"Open Settings > Battery > Battery Health & Charging.",
				"Turn on Optimized Battery Charging.",
				"If maximum capacity is below 80%, consider a battery replacement.",
			},
		},
	},
	{
		Category: "hardware", Subject: "laptop", IssueKey: "screen issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Adjust brightness with the function keys.",
				"Connect an external monitor to check whether the problem is the panel or the graphics.",
				"Update the display driver.",
				"For cracked or flickering panels, bring the laptop to the ICT office.",
			},
		},
	},
	{
		Category: "hardware", Subject: "phone", IssueKey: "screen issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Restart the phone.",
				"Turn off adaptive brightness and test again.",
				"Boot into safe mode to check whether an app causes the flicker.",
				"Cracked screens need replacement at a service center.",
			},
		},
	},
	{
		Category: "hardware", Subject: "printer", IssueKey: "printer issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Check that the printer is on, has paper and shows no error light.",
				"Open the print queue and cancel stuck jobs.",
				"Turn the printer off and on again, then restart the computer.",
				"Reinstall the printer driver from the manufacturer's website.",
			},
			"epson": {
				"Run Epson Status Monitor to check ink levels and errors.",
				"Run Nozzle Check and Head Cleaning from the printer utility if prints are faint.",
				"Remove jammed paper following the arrows inside the cover.",
				"Reinstall the driver from epson.com if the printer shows offline.",
			},
			"canon": {
				"Check the printer display for a support code and look it up in the manual.",
				"Run Print Head Cleaning from the Canon IJ Printer Assistant Tool.",
				"Remove jammed paper from the rear tray and the duplex unit.",
			},
			"hp": {
				"Run HP Smart and use Print and Scan Doctor to diagnose the printer.",
				"Check the cartridges are genuine and seated correctly.",
				"Reset the printer: unplug the power cord for 60 seconds while it is on, then reconnect.",
			},
		},
	},
	{
		Category: "software", Subject: "windows", IssueKey: "blue screen",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Write down the stop code shown on the blue screen.",
				"Restart and uninstall any software or driver you installed recently.",
				"Run Windows Update and install pending updates.",
				"Open Command Prompt as administrator and run sfc /scannow.",
				"If it keeps crashing, boot into Safe Mode and bring the stop code to the ICT office.",
			},
		},
	},
	{
		Category: "software", Subject: "laptop", IssueKey: "slow performance",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Restart the laptop.",
				"Close programs you are not using.",
				"Free up storage space until at least 15% of the disk is empty.",
				"Run a malware scan.",
			},
			"windows": {
				"Open Task Manager (Ctrl + Shift + Esc) and end tasks using high CPU or memory.",
				"Disable unnecessary startup apps in Task Manager > Startup.",
				"Run Disk Cleanup and empty the Recycle Bin.",
				"Set the power mode to Best performance while plugged in.",
				"Run Windows Security > Virus & threat protection > Quick scan.",
			},
			"macos": {
				"Open Activity Monitor and quit processes using a lot of CPU or memory.",
				"Remove login items in System Settings > General > Login Items.",
				"Free up space using System Settings > General > Storage.",
				"Install pending macOS updates.",
			},
		},
	},
	{
		Category: "software", Subject: "desktop", IssueKey: "slow performance",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Restart the computer.",
				"Close programs you are not using.",
				"Free up disk space.",
			},
			"windows": {
				"Open Task Manager and end tasks using high CPU, memory or disk.",
				"Disable unnecessary startup apps.",
				"Run Disk Cleanup.",
				"Run a Windows Security quick scan.",
			},
		},
	},
	{
		Category: "software", Subject: "phone", IssueKey: "slow performance",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Restart the phone.",
				"Delete apps and files you no longer need.",
				"Update the phone software.",
			},
			"android": {
				"Clear cached data in Settings > Storage.",
				"Uninstall or disable apps you do not use.",
				"Turn off animations in Developer options if the phone feels laggy.",
				"Install pending system updates.",
			},
			"ios": {
				"Close apps from the app switcher.",
				"Offload unused apps in Settings > General > iPhone Storage.",
				"Turn on Reduce Motion in Accessibility settings.",
				"Install the latest iOS update.",
			},
		},
	},
	{
		Category: "software", Subject: "windows", IssueKey: "virus",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Disconnect from the internet.",
				"Run Windows Security > Virus & threat protection > Full scan.",
				"Run Microsoft Defender Offline scan if threats keep coming back.",
				"Remove unfamiliar browser extensions and reset the browser.",
				"Change your passwords from a clean device.",
			},
		},
	},
	{
		Category: "software", Subject: "macos", IssueKey: "virus",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Quit suspicious apps and move them to the Trash.",
				"Remove unfamiliar login items and browser extensions.",
				"Install the latest macOS security updates.",
				"Change your passwords from a clean device.",
			},
		},
	},
	{
		Category: "software", Subject: "android", IssueKey: "virus",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Restart in safe mode.",
				"Uninstall apps you do not recognize or installed just before the pop-ups started.",
				"Run Google Play Protect scan.",
				"Remove device admin rights from unknown apps in Security settings.",
			},
		},
	},
	{
		Category: "software", Subject: "windows", IssueKey: "software install",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Download the installer only from the official website or the Microsoft Store.",
				"Right-click the installer and choose Run as administrator.",
				"Check that you have enough free disk space.",
				"Temporarily pause other installs and Windows Update, then retry.",
				"University-licensed software is available from the ICT office.",
			},
		},
	},
	{
		Category: "software", Subject: "macos", IssueKey: "software install",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Download the app from the App Store or the developer's website.",
				"If macOS blocks it, open System Settings > Privacy & Security and click Open Anyway.",
				"Drag the app into the Applications folder before opening it.",
			},
		},
	},
	{
		Category: "network", Subject: "laptop", IssueKey: "network issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Turn Wi-Fi off and on again, or toggle airplane mode.",
				"Forget the campus network and reconnect using your student credentials.",
				"Move closer to the access point and check whether others nearby are connected.",
				"Restart the laptop.",
				"If only your device fails, report the MAC address to the ICT office.",
			},
		},
	},
	{
		Category: "network", Subject: "desktop", IssueKey: "network issue",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Check that the LAN cable is connected and the port light is on.",
				"Run the network troubleshooter.",
				"Restart the computer.",
				"Report the room and PC number to the ICT office if the port is dead.",
			},
		},
	},
	{
		Category: "account", Subject: AnySubject, IssueKey: "password reset",
		Solutions: map[string][]string{
			DefaultVariant: {
				"Open the student portal and click Forgot Password.",
				"Enter your student ID and registered email address.",
				"Follow the link sent to your email within 30 minutes.",
				"If you no longer have access to that email, visit the ICT office with your school ID.",
			},
		},
	},
}
